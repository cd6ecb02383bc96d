package handler

import (
	"bytes"
	"fmt"
	"io"
	baseHttp "net/http"
	"strings"

	"github.com/carmegar/blogpage/handler/payload"
	"github.com/carmegar/blogpage/pkg/endpoint"
	"github.com/carmegar/blogpage/pkg/gate"
	"github.com/carmegar/blogpage/pkg/portal"
	"github.com/carmegar/blogpage/pkg/uploader"
)

const maxUploadSize = 5 << 20

const uploadsFolder = "posts"

var allowedUploadTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

// UploadsHandler stores post images on the configured bucket and hands back
// their public URL.
type UploadsHandler struct {
	Uploader *uploader.Uploader
}

func NewUploadsHandler(up *uploader.Uploader) UploadsHandler {
	return UploadsHandler{
		Uploader: up,
	}
}

func (h *UploadsHandler) Store(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	session, apiErr := requireSession(r)
	if apiErr != nil {
		return apiErr
	}

	if apiErr = authorise(session, gate.ActionUpload, 0); apiErr != nil {
		return apiErr
	}

	r.Body = baseHttp.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return endpoint.LogBadRequestError("the uploaded file is too large or malformed", err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return endpoint.LogBadRequestError("missing [file] form field", err)
	}

	defer portal.CloseWithLog(file)

	// Sniff the real content type instead of trusting the client header.
	head := make([]byte, 512)
	read, err := file.Read(head)
	if err != nil && err != io.EOF {
		return endpoint.LogInternalError("could not read the uploaded file", err)
	}

	head = head[:read]
	mimeType := baseHttp.DetectContentType(head)

	if _, ok := allowedUploadTypes[mimeType]; !ok {
		return endpoint.BadRequestError(
			fmt.Sprintf("unsupported file type [%s], expected jpeg, png or webp", mimeType),
		)
	}

	key := uploader.MakeKey(uploadsFolder, header.Filename)
	body := io.MultiReader(bytes.NewReader(head), file)

	url, err := h.Uploader.Put(r.Context(), key, body, mimeType)
	if err != nil {
		return endpoint.LogInternalError("could not store the uploaded file", err)
	}

	return respondJSON(w, baseHttp.StatusCreated, payload.UploadResponse{
		URL:      url,
		Key:      key,
		MimeType: mimeType,
		Size:     header.Size,
	})
}

// Destroy removes a stored image. Clients pass either the object key or the
// public URL they were handed on upload.
func (h *UploadsHandler) Destroy(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	session, apiErr := requireSession(r)
	if apiErr != nil {
		return apiErr
	}

	if apiErr = authorise(session, gate.ActionDeleteUpload, 0); apiErr != nil {
		return apiErr
	}

	key := strings.TrimSpace(r.URL.Query().Get("key"))
	if key == "" {
		key = h.Uploader.KeyFromURL(strings.TrimSpace(r.URL.Query().Get("url")))
	}

	if key == "" {
		return endpoint.BadRequestError("missing [key] query parameter, or the given [url] does not belong to this bucket")
	}

	if err := h.Uploader.Delete(r.Context(), key); err != nil {
		return endpoint.LogInternalError("could not delete the stored file", err)
	}

	return respondJSON(w, baseHttp.StatusOK, map[string]string{
		"message": "upload deleted",
		"key":     key,
	})
}
