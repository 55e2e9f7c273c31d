package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"churchplus-backend/internal/security"
	"churchplus-backend/internal/service"
)

// NewRouter wires every endpoint under /api/v1. Route names are the keys of
// config.EndpointSecurityConfig.
func NewRouter(
	memberSvc service.MemberService,
	contributionSvc service.ContributionService,
	statusSvc service.StatusService,
	tokenManager security.TokenManager,
) *mux.Router {
	members := NewMemberHandler(memberSvc)
	contributions := NewContributionHandler(contributionSvc)
	status := NewStatusHandler(statusSvc)

	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(RequestLogger, NewAuthMiddleware(tokenManager).Handler)

	api.HandleFunc("/status", status.GetStatus).Methods(http.MethodGet).Name("GetStatus")

	api.HandleFunc("/members", members.CreateMember).Methods(http.MethodPost).Name("CreateMember")
	api.HandleFunc("/members", members.ListMembers).Methods(http.MethodGet).Name("ListMembers")
	api.HandleFunc("/members/by-name-like/{name}", members.SearchMembersByName).Methods(http.MethodGet).Name("SearchMembersByName")
	api.HandleFunc("/members/{id}", members.GetMember).Methods(http.MethodGet).Name("GetMember")
	api.HandleFunc("/members/{id}", members.UpdateMember).Methods(http.MethodPut).Name("UpdateMember")
	api.HandleFunc("/members/{id}", members.DeleteMember).Methods(http.MethodDelete).Name("DeleteMember")

	// Fixed segments go before {memberId} so they are not read as ids.
	fc := api.PathPrefix("/financial-contributions").Subrouter()
	fc.HandleFunc("", contributions.CreateContribution).Methods(http.MethodPost).Name("CreateContribution")
	fc.HandleFunc("", contributions.ListContributionsByDate).Methods(http.MethodGet).Name("ListContributionsByDate")
	fc.HandleFunc("/summary", contributions.GetContributionSummary).Methods(http.MethodGet).Name("GetContributionSummary")
	fc.HandleFunc("/snapshots", contributions.ListContributionSnapshots).Methods(http.MethodGet).Name("ListContributionSnapshots")
	fc.HandleFunc("/contribution/{contributionId}", contributions.GetContribution).Methods(http.MethodGet).Name("GetContribution")
	fc.HandleFunc("/{memberId}", contributions.ListContributionsByMember).Methods(http.MethodGet).Name("ListContributionsByMember")
	fc.HandleFunc("/{id}", contributions.UpdateContribution).Methods(http.MethodPut).Name("UpdateContribution")
	fc.HandleFunc("/{id}", contributions.DeleteContribution).Methods(http.MethodDelete).Name("DeleteContribution")

	return router
}
