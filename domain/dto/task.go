package dto

import (
	"time"

	"github.com/creative-sdg/multitulza-sub000/pkg/tasks"
)

type TaskResponse struct {
	ID         string     `json:"id"`
	Kind       string     `json:"kind"`
	State      string     `json:"state"`
	ImageID    string     `json:"imageId,omitempty"`
	Scene      string     `json:"scene,omitempty"`
	Error      string     `json:"error,omitempty"`
	URL        string     `json:"url,omitempty"`
	BlobKey    string     `json:"blobKey,omitempty"`
	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
}

type TaskListResponse struct {
	Tasks  []TaskResponse `json:"tasks"`
	Active int            `json:"active"`
}

func TaskToResponse(t *tasks.Task) TaskResponse {
	resp := TaskResponse{
		ID:        t.ID.String(),
		Kind:      string(t.Kind),
		State:     string(t.State),
		ImageID:   t.ImageID,
		Scene:     t.Scene,
		Error:     t.Error,
		StartedAt: t.StartedAt,
	}
	if !t.FinishedAt.IsZero() {
		finished := t.FinishedAt
		resp.FinishedAt = &finished
	}
	if t.Result != nil {
		resp.URL = t.Result.URL
		resp.BlobKey = t.Result.BlobKey
	}
	return resp
}
