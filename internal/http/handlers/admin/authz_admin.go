package admin

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/husncart/husncart/internal/cache"
	"github.com/husncart/husncart/internal/http/response"
	"github.com/husncart/husncart/internal/models"

	"github.com/gin-gonic/gin"
)

type authzRolePayload struct {
	Role string `json:"role" binding:"required"`
}

type authzPolicyPayload struct {
	Role   string `json:"role" binding:"required"`
	Object string `json:"object" binding:"required"`
	Action string `json:"action" binding:"required"`
}

type authzSetAdminRolesPayload struct {
	Roles []string `json:"roles"`
}

// GetAuthzMe returns the current admin's permission snapshot.
func (h *Handler) GetAuthzMe(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}

	roles, err := h.AuthzService.GetAdminRoles(adminID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "permission fetch failed", err)
		return
	}
	policies, err := h.AuthzService.GetAdminPolicies(adminID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "permission fetch failed", err)
		return
	}

	isSuper := false
	if value, exists := c.Get("admin_is_super"); exists {
		if flag, typeOK := value.(bool); typeOK {
			isSuper = flag
		}
	}

	response.Success(c, gin.H{
		"admin_id": adminID,
		"is_super": isSuper,
		"roles":    roles,
		"policies": policies,
	})
}

// ListAuthzRoles returns all role names.
func (h *Handler) ListAuthzRoles(c *gin.Context) {
	roles, err := h.AuthzService.ListRoles()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "role list failed", err)
		return
	}
	response.Success(c, roles)
}

// CreateAuthzRole registers a role name.
func (h *Handler) CreateAuthzRole(c *gin.Context) {
	var req authzRolePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	role, err := h.AuthzService.EnsureRole(req.Role)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid role name", err)
		return
	}

	requestLog(c).Infow("authz_role_created", "role", role)
	response.Created(c, gin.H{"role": role})
}

// DeleteAuthzRole removes a role and its policies.
func (h *Handler) DeleteAuthzRole(c *gin.Context) {
	role, ok := roleParam(c)
	if !ok {
		return
	}

	if err := h.AuthzService.DeleteRole(role); err != nil {
		respondError(c, http.StatusInternalServerError, "role delete failed", err)
		return
	}

	requestLog(c).Infow("authz_role_deleted", "role", role)
	response.Success(c, gin.H{"ok": true})
}

// GetAuthzRolePolicies returns the policies attached to one role.
func (h *Handler) GetAuthzRolePolicies(c *gin.Context) {
	role, ok := roleParam(c)
	if !ok {
		return
	}

	policies, err := h.AuthzService.GetRolePolicies(role)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "policy fetch failed", err)
		return
	}
	response.Success(c, policies)
}

// GrantAuthzPolicy attaches one object/action rule to a role.
func (h *Handler) GrantAuthzPolicy(c *gin.Context) {
	var req authzPolicyPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.AuthzService.GrantRolePolicy(req.Role, req.Object, req.Action); err != nil {
		respondError(c, http.StatusBadRequest, "policy grant failed", err)
		return
	}

	requestLog(c).Infow("authz_policy_granted",
		"role", req.Role,
		"object", req.Object,
		"action", req.Action,
	)
	response.Success(c, gin.H{"ok": true})
}

// RevokeAuthzPolicy detaches one object/action rule from a role.
func (h *Handler) RevokeAuthzPolicy(c *gin.Context) {
	var req authzPolicyPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.AuthzService.RevokeRolePolicy(req.Role, req.Object, req.Action); err != nil {
		respondError(c, http.StatusBadRequest, "policy revoke failed", err)
		return
	}

	requestLog(c).Infow("authz_policy_revoked",
		"role", req.Role,
		"object", req.Object,
		"action", req.Action,
	)
	response.Success(c, gin.H{"ok": true})
}

// ListAuthzAdmins returns admin accounts with their roles.
func (h *Handler) ListAuthzAdmins(c *gin.Context) {
	admins, err := h.AdminRepo.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "admin list failed", err)
		return
	}

	items := make([]gin.H, 0, len(admins))
	for _, admin := range admins {
		roles, roleErr := h.AuthzService.GetAdminRoles(admin.ID)
		if roleErr != nil {
			respondError(c, http.StatusInternalServerError, "admin list failed", roleErr)
			return
		}
		items = append(items, gin.H{
			"id":            admin.ID,
			"username":      admin.Username,
			"is_super":      admin.IsSuper,
			"last_login_at": admin.LastLoginAt,
			"created_at":    admin.CreatedAt,
			"roles":         roles,
		})
	}

	response.Success(c, items)
}

// createAdminRequest is the new admin account payload.
type createAdminRequest struct {
	Username string   `json:"username" binding:"required"`
	Password string   `json:"password" binding:"required,min=8"`
	IsSuper  bool     `json:"is_super"`
	Roles    []string `json:"roles"`
}

// CreateAuthzAdmin creates an admin account with optional roles.
func (h *Handler) CreateAuthzAdmin(c *gin.Context) {
	var req createAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		respondError(c, http.StatusBadRequest, "username required", nil)
		return
	}
	existing, err := h.AdminRepo.GetByUsername(username)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "admin create failed", err)
		return
	}
	if existing != nil {
		respondError(c, http.StatusBadRequest, "username already in use", nil)
		return
	}

	hash, err := h.AuthService.HashPassword(req.Password)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "admin create failed", err)
		return
	}

	admin := &models.Admin{
		Username:     username,
		PasswordHash: hash,
		IsSuper:      req.IsSuper,
	}
	if err := h.AdminRepo.Create(admin); err != nil {
		respondError(c, http.StatusInternalServerError, "admin create failed", err)
		return
	}
	if len(req.Roles) > 0 {
		if err := h.AuthzService.SetAdminRoles(admin.ID, req.Roles); err != nil {
			respondError(c, http.StatusInternalServerError, "role assignment failed", err)
			return
		}
	}

	requestLog(c).Infow("authz_admin_created", "admin_id", admin.ID, "username", admin.Username)
	response.Created(c, gin.H{
		"id":       admin.ID,
		"username": admin.Username,
		"is_super": admin.IsSuper,
		"roles":    req.Roles,
	})
}

// GetAuthzAdminRoles returns one admin's roles.
func (h *Handler) GetAuthzAdminRoles(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	roles, err := h.AuthzService.GetAdminRoles(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "role fetch failed", err)
		return
	}
	response.Success(c, gin.H{"admin_id": id, "roles": roles})
}

// SetAuthzAdminRoles replaces one admin's role bindings. The cached
// auth snapshot is dropped so the change takes effect immediately.
func (h *Handler) SetAuthzAdminRoles(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req authzSetAdminRolesPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	admin, err := h.AdminRepo.GetByID(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "role assignment failed", err)
		return
	}
	if admin == nil {
		respondError(c, http.StatusNotFound, "admin not found", nil)
		return
	}

	if err := h.AuthzService.SetAdminRoles(id, req.Roles); err != nil {
		respondError(c, http.StatusBadRequest, "role assignment failed", err)
		return
	}
	_ = cache.DelAdminAuthState(c.Request.Context(), id)

	requestLog(c).Infow("authz_admin_roles_set", "admin_id", id, "roles", req.Roles)
	response.Success(c, gin.H{"admin_id": id, "roles": req.Roles})
}

func roleParam(c *gin.Context) (string, bool) {
	raw := c.Param("role")
	role, err := url.PathUnescape(raw)
	if err != nil || strings.TrimSpace(role) == "" {
		respondError(c, http.StatusBadRequest, "invalid role name", nil)
		return "", false
	}
	return strings.TrimSpace(role), true
}
