package web

import (
	"context"
	"crypto/subtle"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("request_id", rid)
		c.Header(requestIDHeader, rid)
		c.Next()
	}
}

func accessLog(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Printf(
			"HTTP access | rid=%s method=%s path=%s status=%d latency=%s resp_bytes=%d ua=%q",
			c.GetString("request_id"), c.Request.Method, c.Request.URL.RequestURI(),
			c.Writer.Status(), time.Since(start), c.Writer.Size(), c.Request.UserAgent(),
		)
	}
}

// untrackedPrefixes are never recorded as visits.
var untrackedPrefixes = []string{"/static/", "/images/", "/resources/", "/admin", "/favicon", "/privacy", "/healthz", "/api/"}

func doNotTrack(c *gin.Context) bool {
	return c.GetHeader("DNT") == "1"
}

func visitorTracking(tracker Tracker, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.Request.URL.Path
		for _, p := range untrackedPrefixes {
			if strings.HasPrefix(path, p) {
				return
			}
		}
		if doNotTrack(c) || c.Request.Method != http.MethodGet || c.Writer.Status() != http.StatusOK {
			return
		}

		ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), 2*time.Second)
		defer cancel()
		if err := tracker.RecordVisit(ctx, c.ClientIP(), c.Request.UserAgent(), path); err != nil {
			logger.Printf("Error recording visitor: %v", err)
		}
	}
}

const adminCookie = "admin_token"

func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
