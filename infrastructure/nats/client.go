package nats

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/creative-sdg/multitulza-sub000/pkg/logger"
)

// Client wraps NATS connection
// ใช้ plain pub/sub สำหรับ task events - ไม่ต้อง persistent
// เพราะ state จริงอยู่ใน task registry แล้ว
type Client struct {
	conn *nats.Conn
}

// ClientConfig configuration สำหรับ NATS Client
type ClientConfig struct {
	URL string // nats://localhost:4222
}

// NewClient สร้าง NATS Client
func NewClient(cfg ClientConfig) (*Client, error) {
	nc, err := nats.Connect(cfg.URL,
		nats.MaxReconnects(-1), // Reconnect forever
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	logger.Info("NATS client initialized", "url", cfg.URL)
	return &Client{conn: nc}, nil
}

// Conn เข้าถึง underlying connection
func (c *Client) Conn() *nats.Conn {
	return c.conn
}

// IsConnected ตรวจสอบสถานะ connection
func (c *Client) IsConnected() bool {
	return c.conn != nil && c.conn.IsConnected()
}

// Close ปิด connection (drain ก่อนเพื่อให้ message ค้างถูกส่ง)
func (c *Client) Close() {
	if c.conn != nil {
		if err := c.conn.Drain(); err != nil {
			logger.Warn("NATS drain failed", "error", err)
			c.conn.Close()
		}
	}
}
