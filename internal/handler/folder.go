package handler

import (
	"log/slog"
	"net/http"

	"filebox/internal/httputil"
	"filebox/internal/service"
)

// FolderHandler handles folder HTTP requests
type FolderHandler struct {
	folders *service.FolderService
	logger  *slog.Logger
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(folders *service.FolderService, logger *slog.Logger) *FolderHandler {
	return &FolderHandler{folders: folders, logger: logger}
}

// CreateFolderRequest is the body of POST /api/v1/folders.
type CreateFolderRequest struct {
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id"`
}

// RenameFolderRequest is the body of PATCH /api/v1/folders/{id}.
type RenameFolderRequest struct {
	Name string `json:"name"`
}

// List returns all folders as a flat list
// GET /api/v1/folders
func (h *FolderHandler) List(w http.ResponseWriter, r *http.Request) {
	folders, err := h.folders.ListAll(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	httputil.RespondData(w, http.StatusOK, folders)
}

// Tree returns the full nested folder tree
// GET /api/v1/folders/tree
func (h *FolderHandler) Tree(w http.ResponseWriter, r *http.Request) {
	nodes, err := h.folders.Tree(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	httputil.RespondData(w, http.StatusOK, nodes)
}

// Get returns one folder
// GET /api/v1/folders/{id}
func (h *FolderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		respondBadRequest(w, "id", err.Error())
		return
	}

	folder, err := h.folders.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	httputil.RespondData(w, http.StatusOK, folder)
}

// Subfolders returns the direct children of a folder
// GET /api/v1/folders/{id}/subfolders
func (h *FolderHandler) Subfolders(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		respondBadRequest(w, "id", err.Error())
		return
	}

	children, err := h.folders.GetChildren(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	httputil.RespondData(w, http.StatusOK, children)
}

// Subtree returns the nested tree rooted at a folder
// GET /api/v1/folders/{id}/tree
func (h *FolderHandler) Subtree(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		respondBadRequest(w, "id", err.Error())
		return
	}

	node, err := h.folders.Subtree(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	httputil.RespondData(w, http.StatusOK, node)
}

// Breadcrumbs returns the ancestor chain from root to a folder
// GET /api/v1/folders/{id}/breadcrumbs
func (h *FolderHandler) Breadcrumbs(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		respondBadRequest(w, "id", err.Error())
		return
	}

	crumbs, err := h.folders.Breadcrumbs(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	httputil.RespondData(w, http.StatusOK, crumbs)
}

// Create creates a new folder
// POST /api/v1/folders
func (h *FolderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		respondBadRequest(w, "body", "Invalid request body")
		return
	}

	folder, err := h.folders.Create(r.Context(), req.Name, req.ParentID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	httputil.RespondData(w, http.StatusCreated, folder)
}

// Rename renames a folder
// PATCH /api/v1/folders/{id}
func (h *FolderHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		respondBadRequest(w, "id", err.Error())
		return
	}

	var req RenameFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		respondBadRequest(w, "body", "Invalid request body")
		return
	}

	folder, err := h.folders.Rename(r.Context(), id, req.Name)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	httputil.RespondMessage(w, http.StatusOK, "Folder renamed successfully", folder)
}

// Delete deletes an empty folder and returns the removed snapshot
// DELETE /api/v1/folders/{id}
func (h *FolderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		respondBadRequest(w, "id", err.Error())
		return
	}

	folder, err := h.folders.Delete(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	httputil.RespondMessage(w, http.StatusOK, "Folder deleted successfully", folder)
}
