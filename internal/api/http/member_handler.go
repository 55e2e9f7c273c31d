package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"churchplus-backend/internal/service"
)

type MemberHandler struct {
	memberSvc service.MemberService
}

func NewMemberHandler(memberSvc service.MemberService) *MemberHandler {
	return &MemberHandler{memberSvc: memberSvc}
}

func (h *MemberHandler) CreateMember(w http.ResponseWriter, r *http.Request) {
	ownerID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	var req createMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	member, err := h.memberSvc.Create(r.Context(), req.toDomain(), ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"savedMember": member})
}

func (h *MemberHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	ownerID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	members, err := h.memberSvc.List(r.Context(), ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"members": members})
}

func (h *MemberHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	ownerID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	member, err := h.memberSvc.Get(r.Context(), mux.Vars(r)["id"], ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"member": member})
}

func (h *MemberHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	ownerID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	var req updateMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	member, err := h.memberSvc.Update(r.Context(), mux.Vars(r)["id"], req.toDomain(), ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"member": member})
}

func (h *MemberHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	ownerID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	if err := h.memberSvc.SoftDelete(r.Context(), mux.Vars(r)["id"], ownerID); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Member deleted.")
}

// SearchMembersByName answers 404 when nothing matches.
func (h *MemberHandler) SearchMembersByName(w http.ResponseWriter, r *http.Request) {
	ownerID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	members, err := h.memberSvc.ListByNameFragment(r.Context(), mux.Vars(r)["name"], ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if len(members) == 0 {
		writeMessage(w, http.StatusNotFound, "No members found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"members": members})
}
