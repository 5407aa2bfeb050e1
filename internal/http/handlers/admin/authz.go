package admin

import (
	"strconv"
	"strings"

	"github.com/rigforge/internal/authz"
	"github.com/rigforge/internal/http/handlers/shared"
	"github.com/rigforge/internal/http/response"
	"github.com/rigforge/internal/repository"
	"github.com/rigforge/internal/service"

	"github.com/gin-gonic/gin"
)

// RolePoliciesView 角色及其直连策略
type RolePoliciesView struct {
	Role     string         `json:"role"`
	Policies []authz.Policy `json:"policies"`
}

// RolePolicyRequest 角色策略授予/撤销请求
type RolePolicyRequest struct {
	Role   string `json:"role" binding:"required"`
	Object string `json:"object" binding:"required"`
	Action string `json:"action" binding:"required"`
}

// GetAuthzRoles 角色与策略列表
func (h *Handler) GetAuthzRoles(c *gin.Context) {
	roles, err := h.AuthzService.ListRoles()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	views := make([]RolePoliciesView, 0, len(roles))
	for _, role := range roles {
		policies, err := h.AuthzService.GetRolePolicies(role)
		if err != nil {
			respondError(c, response.CodeInternal, "error.internal", err)
			return
		}
		views = append(views, RolePoliciesView{Role: role, Policies: policies})
	}
	response.Success(c, views)
}

// GrantRolePolicy 授予角色策略
func (h *Handler) GrantRolePolicy(c *gin.Context) {
	var req RolePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	if err := h.AuthzService.GrantRolePolicy(req.Role, req.Object, req.Action); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	requestLog(c).Infow("admin_role_policy_granted", "role", req.Role, "object", req.Object, "action", req.Action)
	h.recordAuthzAudit(c, service.AuthzAuditActionGrant, req)
	response.Success(c, true)
}

// RevokeRolePolicy 撤销角色策略
func (h *Handler) RevokeRolePolicy(c *gin.Context) {
	var req RolePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	if err := h.AuthzService.RevokeRolePolicy(req.Role, req.Object, req.Action); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	requestLog(c).Infow("admin_role_policy_revoked", "role", req.Role, "object", req.Object, "action", req.Action)
	h.recordAuthzAudit(c, service.AuthzAuditActionRevoke, req)
	response.Success(c, true)
}

// GetAuthzAuditLogs 权限策略审计日志
func (h *Handler) GetAuthzAuditLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(strings.TrimSpace(c.Query("limit")))
	logs, err := h.AuthzAuditService.List(repository.AuthzAuditLogListFilter{
		Role:   strings.TrimSpace(c.Query("role")),
		Action: strings.TrimSpace(c.Query("action")),
		Limit:  limit,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, shared.ListOrEmpty(logs))
}

// recordAuthzAudit 审计写入失败只记日志，不影响策略变更结果
func (h *Handler) recordAuthzAudit(c *gin.Context, action string, req RolePolicyRequest) {
	err := h.AuthzAuditService.Record(service.AuthzAuditRecordInput{
		OperatorUserID: operatorUserID(c),
		Action:         action,
		Role:           req.Role,
		Object:         authz.NormalizeObject(req.Object),
		Method:         req.Action,
		RequestID:      c.GetString("request_id"),
	})
	if err != nil {
		requestLog(c).Warnw("admin_authz_audit_record_failed", "action", action, "error", err)
	}
}

func operatorUserID(c *gin.Context) uint {
	if value, ok := c.Get("user_id"); ok {
		if id, ok := value.(uint); ok {
			return id
		}
	}
	id, err := strconv.ParseUint(strings.TrimSpace(c.GetHeader("X-User-ID")), 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}
