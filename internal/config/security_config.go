// config/security_config.go
package config

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityAccess                      // Access token required
)

// EndpointSecurityConfig maps route names to their required security level
var EndpointSecurityConfig = map[string]SecurityLevel{
	// StatusService - Public
	"GetStatus": SecurityPublic,

	// MemberService - Access Protected
	"CreateMember":        SecurityAccess,
	"ListMembers":         SecurityAccess,
	"GetMember":           SecurityAccess,
	"UpdateMember":        SecurityAccess,
	"DeleteMember":        SecurityAccess,
	"SearchMembersByName": SecurityAccess,

	// ContributionService - Access Protected
	"CreateContribution":        SecurityAccess,
	"ListContributionsByDate":   SecurityAccess,
	"GetContributionSummary":    SecurityAccess,
	"ListContributionSnapshots": SecurityAccess,
	"GetContribution":           SecurityAccess,
	"ListContributionsByMember": SecurityAccess,
	"UpdateContribution":        SecurityAccess,
	"DeleteContribution":        SecurityAccess,
}

// GetSecurityLevel returns the security level for a given route name
func GetSecurityLevel(route string) SecurityLevel {
	if level, exists := EndpointSecurityConfig[route]; exists {
		return level
	}
	// Default to highest security for unknown endpoints
	return SecurityAccess
}
