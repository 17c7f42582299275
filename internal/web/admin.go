package web

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) validCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPass)) == 1
	return userOK && passOK
}

// setupAdminRoutes mounts the admin area. It needs both a tracker and
// configured credentials.
func (s *Server) setupAdminRoutes(r *gin.Engine) {
	if s.tracker == nil {
		return
	}
	if s.adminUser == "" || s.adminPass == "" {
		s.logger.Println("Admin area disabled: set ADMIN_USERNAME and ADMIN_PASSWORD to enable it")
		return
	}
	s.logger.Printf("Admin access available at: /admin/login")

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login", gin.H{})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if !s.validCredentials(c.PostForm("username"), c.PostForm("password")) {
			s.logger.Printf("Failed admin login attempt from %s", s.tracker.HashIP(c.ClientIP()))
			c.HTML(http.StatusUnauthorized, "admin-login", gin.H{"Error": "Invalid credentials"})
			return
		}
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(adminCookie, s.adminToken, 3600*24, "/admin", "", c.Request.TLS != nil, true)
		s.logger.Printf("Admin login successful from %s", s.tracker.HashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", c.Request.TLS != nil, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin")
	admin.Use(s.adminAuth())

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.tracker.Stats(c.Request.Context())
		if err != nil {
			s.logger.Printf("Error loading admin stats: %v", err)
			s.renderError(c, http.StatusInternalServerError, "Failed to load statistics")
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard", gin.H{"Stats": stats})
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.tracker.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.tracker.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		s.logger.Printf("Admin stats exported by %s", s.tracker.HashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		n, err := s.tracker.Cleanup(c.Request.Context(), s.retention)
		if err != nil {
			s.logger.Printf("Error cleaning up visitor data: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete", "deleted": n})
	})
}
