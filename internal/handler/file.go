package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"filebox/internal/config"
	"filebox/internal/httputil"
	"filebox/internal/service"
)

// FileHandler handles file HTTP requests
type FileHandler struct {
	files  *service.FileService
	logger *slog.Logger
}

// NewFileHandler creates a new file handler
func NewFileHandler(files *service.FileService, logger *slog.Logger) *FileHandler {
	return &FileHandler{files: files, logger: logger}
}

// RenameFileRequest is the body of PATCH /api/v1/files/{id}/rename.
type RenameFileRequest struct {
	Name string `json:"name"`
}

// List returns all files
// GET /api/v1/files
func (h *FileHandler) List(w http.ResponseWriter, r *http.Request) {
	files, err := h.files.ListAll(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	httputil.RespondMessage(w, http.StatusOK, "All files retrieved successfully", files)
}

// ListByFolder returns the files of one folder
// GET /api/v1/files/folder/{id}
func (h *FileHandler) ListByFolder(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		respondBadRequest(w, "id", err.Error())
		return
	}

	files, err := h.files.ListByFolder(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	httputil.RespondMessage(w, http.StatusOK, "Files retrieved successfully for folder", files)
}

// Upload stores uploaded files under a folder
// POST /api/v1/files/upload (multipart; field "files", form value "folder_id")
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// Whole-request ceiling: per-file limit times the file count cap, plus
	// slack for the form fields themselves.
	r.Body = http.MaxBytesReader(w, r.Body, int64(config.MaxUploadFileSize)*config.MaxUploadFiles+(1<<20))

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondBadRequest(w, "files", "Upload exceeds the size limit")
			return
		}
		respondBadRequest(w, "files", "Invalid multipart request")
		return
	}
	defer r.MultipartForm.RemoveAll()

	parts := r.MultipartForm.File["files"]
	if len(parts) == 0 {
		respondBadRequest(w, "files", "At least one file is required")
		return
	}
	if len(parts) > config.MaxUploadFiles {
		respondBadRequest(w, "files", fmt.Sprintf("At most %d files per request", config.MaxUploadFiles))
		return
	}

	folderID, err := strconv.ParseInt(r.FormValue("folder_id"), 10, 64)
	if err != nil || folderID <= 0 {
		respondBadRequest(w, "folder_id", "Folder ID is required")
		return
	}

	uploads := make([]service.Upload, 0, len(parts))
	for _, part := range parts {
		if part.Size > config.MaxUploadFileSize {
			respondBadRequest(w, "files", fmt.Sprintf("File %q exceeds the 100 MB limit", part.Filename))
			return
		}

		src, err := part.Open()
		if err != nil {
			respondError(w, h.logger, fmt.Errorf("open multipart file: %w", err))
			return
		}
		defer src.Close()

		uploads = append(uploads, service.Upload{
			Name:        part.Filename,
			ContentType: part.Header.Get("Content-Type"),
			Content:     src,
		})
	}

	saved, err := h.files.Upload(r.Context(), folderID, uploads)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	httputil.RespondMessage(w, http.StatusCreated, "Files uploaded successfully", saved)
}

// Rename renames a file, preserving its extension
// PATCH /api/v1/files/{id}/rename
func (h *FileHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		respondBadRequest(w, "id", err.Error())
		return
	}

	var req RenameFileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		respondBadRequest(w, "body", "Invalid request body")
		return
	}

	file, err := h.files.Rename(r.Context(), id, req.Name)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	httputil.RespondMessage(w, http.StatusOK, "File renamed successfully", file)
}

// Delete removes a file record and its blob
// DELETE /api/v1/files/{id}
func (h *FileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		respondBadRequest(w, "id", err.Error())
		return
	}

	file, err := h.files.Delete(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	httputil.RespondMessage(w, http.StatusOK, "File deleted successfully", file)
}
