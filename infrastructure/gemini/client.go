package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/creative-sdg/multitulza-sub000/domain/models"
	"github.com/creative-sdg/multitulza-sub000/domain/ports"
	"github.com/creative-sdg/multitulza-sub000/pkg/logger"
)

const (
	maxOutputTokens = 4096
	defaultTemp     = 0.8 // สูงกว่า default เล็กน้อย อยากได้ scene หลากหลาย
)

// Client implements ports.LLMPort ด้วย Gemini
type Client struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

func NewClient(apiKey, model string) (*Client, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{
		client: client,
		model:  model,
		logger: logger.GetLogger().With("component", "gemini"),
	}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// ============================================================================
// Profile Generation
// ============================================================================

// profileOutput โครง JSON ที่บังคับผ่าน response schema
type profileOutput struct {
	Name        string `json:"name"`
	Personality string `json:"personality"`
	Backstory   string `json:"backstory"`
	LivingPlace string `json:"livingPlace"`
	Style       string `json:"style"`
}

// GenerateProfile ยิงครั้งเดียว ไม่ retry - พลาดแล้วให้ user กดใหม่เอง
func (c *Client) GenerateProfile(ctx context.Context, req *ports.ProfileRequest) (*models.CharacterProfile, error) {
	if len(req.Images) == 0 {
		return nil, fmt.Errorf("at least one image is required")
	}

	model := c.client.GenerativeModel(c.model)
	c.configureModel(model)
	model.ResponseSchema = profileSchema()

	parts := make([]genai.Part, 0, len(req.Images)+1)
	for _, img := range req.Images {
		parts = append(parts, genai.Blob{
			MIMEType: img.MimeType,
			Data:     img.Data,
		})
	}
	parts = append(parts, genai.Text(sanitizeUTF8(req.Instructions)))

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("gemini generate failed: %w", err)
	}

	jsonString, err := extractJSON(resp)
	if err != nil {
		return nil, err
	}

	var out profileOutput
	if err := json.Unmarshal([]byte(jsonString), &out); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	if out.Name == "" {
		return nil, fmt.Errorf("profile missing name")
	}

	return &models.CharacterProfile{
		Name:        out.Name,
		Personality: out.Personality,
		Backstory:   out.Backstory,
		LivingPlace: out.LivingPlace,
		Style:       out.Style,
	}, nil
}

// ============================================================================
// Scene Prompt Generation
// ============================================================================

type scenePromptOutput struct {
	Prompts []struct {
		Scene  string `json:"scene"`
		Prompt string `json:"prompt"`
	} `json:"prompts"`
}

func (c *Client) GenerateScenePrompts(ctx context.Context, req *ports.ScenePromptRequest) ([]models.ImagePrompt, error) {
	if req.Profile == nil {
		return nil, fmt.Errorf("profile is required")
	}
	if len(req.Activities) == 0 {
		return nil, fmt.Errorf("at least one activity is required")
	}

	model := c.client.GenerativeModel(c.model)
	c.configureModel(model)
	model.ResponseSchema = scenePromptsSchema()

	resp, err := model.GenerateContent(ctx, genai.Text(sanitizeUTF8(req.Instructions)))
	if err != nil {
		return nil, fmt.Errorf("gemini generate failed: %w", err)
	}

	jsonString, err := extractJSON(resp)
	if err != nil {
		return nil, err
	}

	var out scenePromptOutput
	if err := json.Unmarshal([]byte(jsonString), &out); err != nil {
		return nil, fmt.Errorf("failed to parse scene prompts: %w", err)
	}

	if len(out.Prompts) != len(req.Activities) {
		return nil, fmt.Errorf("expected %d prompts, got %d", len(req.Activities), len(out.Prompts))
	}

	prompts := make([]models.ImagePrompt, len(out.Prompts))
	for i, p := range out.Prompts {
		if p.Prompt == "" {
			return nil, fmt.Errorf("prompt %d is empty", i)
		}
		scene := p.Scene
		if scene == "" {
			scene = req.Activities[i]
		}
		prompts[i] = models.ImagePrompt{
			Scene:  scene,
			Prompt: p.Prompt,
		}
	}
	return prompts, nil
}

// ============================================================================
// Model Configuration & Schemas
// ============================================================================

func (c *Client) configureModel(model *genai.GenerativeModel) {
	model.ResponseMIMEType = "application/json"
	model.Temperature = toPtr(float32(defaultTemp))
	model.TopP = toPtr(float32(0.95))
	model.TopK = toPtr(int32(40))
	model.MaxOutputTokens = toPtr(int32(maxOutputTokens))
}

func profileSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":        {Type: genai.TypeString, Description: "ชื่อตัวละครที่เข้ากับหน้าตา"},
			"personality": {Type: genai.TypeString, Description: "นิสัยใจคอ 2-3 ประโยค"},
			"backstory":   {Type: genai.TypeString, Description: "เรื่องราวเบื้องหลัง 2-3 ประโยค"},
			"livingPlace": {Type: genai.TypeString, Description: "เมือง/ประเทศที่อาศัย"},
			"style":       {Type: genai.TypeString, Description: "สไตล์การแต่งตัวจากที่เห็นในรูป"},
		},
		Required: []string{"name", "personality", "backstory", "livingPlace", "style"},
	}
}

func scenePromptsSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"prompts": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"scene":  {Type: genai.TypeString, Description: "ชื่อ scene สั้นๆ ตาม activity ที่ได้รับ"},
						"prompt": {Type: genai.TypeString, Description: "image generation prompt ละเอียด เห็นภาพ เป็นภาษาอังกฤษ"},
					},
					Required: []string{"scene", "prompt"},
				},
				Description: "หนึ่ง prompt ต่อหนึ่ง activity ตามลำดับ",
			},
		},
		Required: []string{"prompts"},
	}
}

// ============================================================================
// Response Extraction
// ============================================================================

func extractJSON(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	part := resp.Candidates[0].Content.Parts[0]
	text, ok := part.(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type: %T", part)
	}

	return string(text), nil
}

// sanitizeUTF8 ลบ invalid UTF-8 characters - กัน "proto: field contains invalid UTF-8"
func sanitizeUTF8(s string) string {
	return strings.ToValidUTF8(s, "")
}

func toPtr[T any](v T) *T {
	return &v
}
