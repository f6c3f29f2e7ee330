package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"

	apperrors "vendorpanel/pkg/errors"
)

// File is one part of a multipart upload.
type File struct {
	Name   string
	Reader io.Reader
}

// form accumulates multipart fields and files in insertion order. The field
// names written here must match the backend's expected multipart identifiers
// exactly.
type form struct {
	fields []fieldPart
	files  []filePart
}

type fieldPart struct {
	key   string
	value string
}

type filePart struct {
	field string
	name  string
	r     io.Reader
}

func (f *form) addField(key, value string) {
	f.fields = append(f.fields, fieldPart{key: key, value: value})
}

func (f *form) addOptionalField(key, value string) {
	if value != "" {
		f.addField(key, value)
	}
}

func (f *form) addFile(field string, file File) {
	f.files = append(f.files, filePart{field: field, name: file.Name, r: file.Reader})
}

func (f *form) encode() (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	for _, field := range f.fields {
		if err := w.WriteField(field.key, field.value); err != nil {
			return nil, "", err
		}
	}
	for _, file := range f.files {
		part, err := w.CreateFormFile(file.field, file.name)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, file.r); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return body, w.FormDataContentType(), nil
}

func (c *Client) doMultipart(ctx context.Context, method, path string, f *form, out interface{}) error {
	body, contentType, err := f.encode()
	if err != nil {
		return apperrors.Internal("failed to encode multipart form", err)
	}

	req, err := c.newRequest(ctx, method, path, nil, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	return c.send(req, out)
}

func marshalJSONField(v interface{}) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(raw)
}
