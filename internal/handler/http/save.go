// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okulikov/go-save-sync/internal/checksum"
	"github.com/okulikov/go-save-sync/internal/logger"
	"github.com/okulikov/go-save-sync/internal/store"
	"github.com/okulikov/go-save-sync/internal/utils"
	"github.com/okulikov/go-save-sync/models"
)

// version handles GET /api/save/version: the lightweight probe clients use
// to decide a sync direction. A missing document reports version zero, not
// an error.
func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, ok := utils.GetOwnerFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	state, _, err := h.saves.State(ctx, owner)
	if err != nil {
		log.Err(err).Msg("read remote save state")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.VersionResponse{RemoteState: state}, http.StatusOK)
}

// download handles GET /api/save/: returns the owner's full document or 404
// when none exists.
func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, ok := utils.GetOwnerFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	doc, found, err := h.saves.Get(ctx, owner)
	if err != nil {
		log.Err(err).Msg("read remote save")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "no remote save", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, doc, http.StatusOK)
}

// upload handles PUT /api/save/: stores the document as the next remote
// revision. A stale expected version is rejected with 409, a payload whose
// checksum does not match with 400.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, ok := utils.GetOwnerFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("decode upload request")
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}

	if !checksum.Verify(req.Document.Payload, req.Document.Checksum) {
		log.Warn().Msg("upload rejected, checksum mismatch")
		http.Error(w, "document checksum mismatch", http.StatusBadRequest)
		return
	}

	state, err := h.saves.Put(ctx, owner, req.Document, req.ExpectedVersion)
	if err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			log.Warn().
				Uint64("expected_version", req.ExpectedVersion).
				Msg("upload rejected, version conflict")
			http.Error(w, "remote version conflict", http.StatusConflict)
			return
		}
		log.Err(err).Msg("store remote save")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.UploadResponse{RemoteState: state}, http.StatusOK)
}

// del handles DELETE /api/save/: "clear cloud data". Destructive, owned by
// the caller; the sync engine never issues it on its own.
func (h *Handler) del(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, ok := utils.GetOwnerFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.saves.Delete(ctx, owner); err != nil {
		log.Err(err).Msg("delete remote save")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
