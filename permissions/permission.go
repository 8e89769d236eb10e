package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"hotel/shared/constant"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

var knownRoles = []string{constant.RoleAdmin, constant.RoleHotelManager, constant.RoleCustomer}

// Permission lists the roles allowed on one route. Skip marks public routes
// such as availability and price lookups.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions matches the chi route pattern exactly, then falls back to
// entries ending in /* by prefix. Unknown routes get an empty Permission.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return rp.Method == method && rp.Path == path
	})

	if idx == -1 {
		idx = slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
			prefix, ok := strings.CutSuffix(rp.Path, constant.Asterix)

			return ok && rp.Method == method && strings.HasPrefix(path, prefix)
		})
	}

	if idx == -1 {
		return Permission{}
	}

	return r.Endpoints[idx]
}

func Parse(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	for _, endpoint := range permissions.Endpoints {
		for _, role := range endpoint.Permissions {
			if !slices.Contains(knownRoles, role) {
				return nil, fmt.Errorf("unknown role %q on %s %s", role, endpoint.Method, endpoint.Path)
			}
		}
	}

	return &permissions, nil
}

func Get() *PermissionData {
	permissions, err := Parse(permissionsData)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}
