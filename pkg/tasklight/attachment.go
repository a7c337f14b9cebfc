package tasklight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// attachmentFormField is the multipart form field the server reads
// uploaded files from.
const attachmentFormField = "files"

// GetTaskAttachments lists the attachments on a task.
func (c *Client) GetTaskAttachments(ctx context.Context, taskID int64, opts ...ListOption) ([]TaskAttachment, error) {
	var attachments []TaskAttachment
	path := fmt.Sprintf("/tasks/%d/attachments", taskID)
	if err := c.do(ctx, http.MethodGet, path, listValues(opts), nil, &attachments, nil); err != nil {
		return nil, err
	}
	return attachments, nil
}

// UploadTaskAttachment uploads a file as a task attachment. The request is
// a multipart form, not JSON, so it bypasses the shared request path: the
// content type comes from the multipart writer (which owns the boundary),
// the bearer header is attached only when a token is configured, and the
// response status is classified here.
func (c *Client) UploadTaskAttachment(ctx context.Context, taskID int64, filename string, content io.Reader) (*TaskAttachment, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile(attachmentFormField, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart form: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to read attachment content: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	path := fmt.Sprintf("/tasks/%d/attachments", taskID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	c.setAuthHeader(req.Header)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Endpoint: path, Method: http.MethodPut, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, classifyResponse(http.MethodPut, path, resp)
	}

	var attachment TaskAttachment
	if err := json.NewDecoder(resp.Body).Decode(&attachment); err != nil {
		return nil, fmt.Errorf("failed to decode attachment response: %w", err)
	}
	return &attachment, nil
}

// DownloadTaskAttachment streams the raw file content of an attachment to
// w.
func (c *Client) DownloadTaskAttachment(ctx context.Context, taskID, attachmentID int64, w io.Writer) error {
	path := fmt.Sprintf("/tasks/%d/attachments/%d", taskID, attachmentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	c.setAuthHeader(req.Header)

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Endpoint: path, Method: http.MethodGet, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classifyResponse(http.MethodGet, path, resp)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("failed to read attachment content: %w", err)
	}
	return nil
}

// DeleteTaskAttachment deletes an attachment from a task.
func (c *Client) DeleteTaskAttachment(ctx context.Context, taskID, attachmentID int64) (*Message, error) {
	var msg Message
	path := fmt.Sprintf("/tasks/%d/attachments/%d", taskID, attachmentID)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, &msg, nil); err != nil {
		return nil, err
	}
	return &msg, nil
}
