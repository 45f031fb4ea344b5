// Package booking wraps the remote booking API that owns availability,
// capacity and persistence. Calls are thin: no retries, no caching, upstream
// errors surfaced verbatim.
package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ecoharmony/park-registration/internal/domain"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:8000"

var ErrActivityNotFound = errors.New("actividad no encontrada")

// UpstreamError is a failed call to the booking API: a non-2xx response
// (Message carries the backend's message when the body had one) or a
// transport failure (Err set, StatusCode 503).
type UpstreamError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("booking api: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("booking api: %d: %s", e.StatusCode, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func transportErr(err error) *UpstreamError {
	return &UpstreamError{
		StatusCode: http.StatusServiceUnavailable,
		Message:    "el servicio de reservas no está disponible",
		Err:        err,
	}
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// rawActivity is the backend's row shape. requiere_talla arrives as a 0/1
// integer and nombre may carry stray whitespace; both are normalized here.
type rawActivity struct {
	ID             int    `json:"id"`
	Name           string `json:"nombre"`
	RequiresSize   int    `json:"requiere_talla"`
	TotalCapacity  int    `json:"total_cupos"`
	TotalSchedules int    `json:"total_horarios"`
	Description    string `json:"descripcion"`
	Terms          string `json:"terminos_y_condiciones"`
}

func (r rawActivity) normalize() domain.Activity {
	return domain.Activity{
		ID:             r.ID,
		Name:           strings.TrimSpace(r.Name),
		RequiresSize:   r.RequiresSize == 1,
		TotalCapacity:  r.TotalCapacity,
		TotalSchedules: r.TotalSchedules,
		Description:    r.Description,
		Terms:          r.Terms,
	}
}

// ListActivities fetches the full activity catalog.
func (c *Client) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	var envelope struct {
		Activities []rawActivity `json:"actividades"`
	}
	if err := c.getJSON(ctx, "/actividades", &envelope); err != nil {
		return nil, fmt.Errorf("booking.ListActivities -> %w", err)
	}
	activities := make([]domain.Activity, len(envelope.Activities))
	for i, raw := range envelope.Activities {
		activities[i] = raw.normalize()
	}
	return activities, nil
}

// GetActivityDetail fetches one activity's metadata plus its full schedule
// slot list.
func (c *Client) GetActivityDetail(ctx context.Context, activityID int) (domain.Activity, []domain.ScheduleSlot, error) {
	var envelope struct {
		Activity rawActivity           `json:"actividad"`
		Slots    []domain.ScheduleSlot `json:"horarios"`
	}
	err := c.getJSON(ctx, "/actividad/"+strconv.Itoa(activityID), &envelope)
	if err != nil {
		var upstream *UpstreamError
		if errors.As(err, &upstream) && upstream.StatusCode == http.StatusNotFound {
			return domain.Activity{}, nil, ErrActivityNotFound
		}
		return domain.Activity{}, nil, fmt.Errorf("booking.GetActivityDetail -> %w", err)
	}
	return envelope.Activity.normalize(), envelope.Slots, nil
}

// SubmitRegistration posts the final registration. Sent once per user
// confirmation; the success payload is passed through unmodified.
func (c *Client) SubmitRegistration(ctx context.Context, reg domain.RegistrationRequest) (domain.Confirmation, error) {
	body, err := json.Marshal(reg)
	if err != nil {
		return domain.Confirmation{}, fmt.Errorf("booking.SubmitRegistration -> json.Marshal -> %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/inscripcion", bytes.NewReader(body))
	if err != nil {
		return domain.Confirmation{}, fmt.Errorf("booking.SubmitRegistration -> %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Confirmation{}, transportErr(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Confirmation{}, transportErr(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.Confirmation{}, &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(raw, "Error en la inscripción"),
		}
	}

	zap.L().Info("registration submitted",
		zap.Int("activity_id", reg.ActivityID),
		zap.Int("schedule_id", reg.ScheduleID),
		zap.Int("visitors", len(reg.Visitors)),
	)

	return domain.Confirmation{
		Message: extractMessage(raw, "Inscripción exitosa"),
		Payload: json.RawMessage(raw),
	}, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportErr(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportErr(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(raw, http.StatusText(resp.StatusCode)),
		}
	}

	return json.Unmarshal(raw, out)
}

// extractMessage pulls an optional {"message": ...} out of a response body,
// falling back when absent or unparseable.
func extractMessage(raw []byte, fallback string) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return fallback
}
