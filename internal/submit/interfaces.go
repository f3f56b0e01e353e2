package submit

import (
	"context"
	"time"

	"github.com/ytget/todo/internal/model"
)

// Sender defines the interface for the submission service.
type Sender interface {
	Send(ctx context.Context, tasks []*model.Task) (*Receipt, error)
	Endpoint() string

	// SetEndpoint changes the URL used by later sends
	SetEndpoint(endpoint string)

	// SetTimeout changes the per-request timeout
	SetTimeout(timeout time.Duration)
}
