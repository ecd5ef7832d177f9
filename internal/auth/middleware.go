package auth

import (
	"net/http"
	"strings"

	"github.com/avelins/slotkeeper/internal/domain"
	"github.com/avelins/slotkeeper/internal/service/ports"
	"github.com/wb-go/wbf/ginext"
)

const tenantIDKey = "tenant_id"

// TenantAuth resolves the acting tenant from the bearer token, verifies
// it is active, and injects it into the request context. Every
// authenticated route goes through here; handlers never trust a tenant
// id from the request body.
func TenantAuth(tenants ports.TenantRepo) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing or invalid Authorization header"},
			)
			return
		}

		claims, err := ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "unauthorized"})
			return
		}

		tenant, err := tenants.GetByID(c.Request.Context(), claims.TenantID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "unauthorized"})
			return
		}

		if tenant.Status != domain.TenantStatusActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "tenant is suspended"})
			return
		}

		c.Set(tenantIDKey, tenant.ID)
		c.Next()
	}
}

// TenantID extracts the acting tenant from the request context.
func TenantID(c *ginext.Context) string {
	if v, ok := c.Get(tenantIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
