package push

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

type pushRequest struct {
	UserID   string            `json:"user_id"`
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HTTPPushSender talks to the platform's push gateway. Delivery is
// best-effort; callers are expected to log the error and carry on.
type HTTPPushSender struct {
	Address string
}

func NewHTTPPushSender(address string) *HTTPPushSender {
	return &HTTPPushSender{Address: address}
}

func (h *HTTPPushSender) Push(userID, title, body string, metadata map[string]string) error {
	requestBodyBytes, err := json.Marshal(pushRequest{
		UserID:   userID,
		Title:    title,
		Body:     body,
		Metadata: metadata,
	})
	if err != nil {
		return err
	}

	response, err := http.Post(fmt.Sprintf("%s/push/send", h.Address), "application/json", bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return nil
	}
	var errResp errorResponse
	if err := json.Unmarshal(responseBodyBytes, &errResp); err != nil {
		return fmt.Errorf("push gateway returned status %d", response.StatusCode)
	}
	return errors.New(errResp.Error)
}
