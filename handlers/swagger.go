package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the reminder service.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>aireminder — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the reminder endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "aireminder", "version": "v0.1.0" },
  "paths": {
    "/api/reminders": {
      "get": { "summary": "List own reminders, filtered by status (pending|completed|all)", "responses": { "200": { "description": "reminder list" } } },
      "post": { "summary": "Create a reminder", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"title":{"type":"string"},"notes":{"type":"string"},"dueAt":{"type":"string"},"recurrence":{"type":"string"},"recurrenceEnd":{"type":"string"},"weeklyDays":{"type":"array","items":{"type":"integer"}},"sharedWith":{"type":"array","items":{"type":"string"}}}}}}}, "responses": { "201": { "description": "created reminder" }, "400": { "description": "validation failed" } } }
    },
    "/api/reminders/date/{date}": {
      "get": { "summary": "Reminders occurring on a calendar day (own + shared, recurrence-aware)", "responses": { "200": { "description": "reminder list" }, "400": { "description": "invalid date" } } }
    },
    "/api/reminders/today": { "get": { "summary": "Reminders occurring today", "responses": { "200": { "description": "reminder list" } } } },
    "/api/reminders/upcoming": { "get": { "summary": "Reminders occurring within the next N days, sorted by dueDate or priority", "responses": { "200": { "description": "reminder list" } } } },
    "/api/reminders/overdue": { "get": { "summary": "Pending reminders with a due instant in the past", "responses": { "200": { "description": "reminder list" } } } },
    "/api/reminders/search": { "get": { "summary": "Case-insensitive substring search over title and notes", "responses": { "200": { "description": "reminder list" } } } },
    "/api/reminders/shared": { "get": { "summary": "Reminders shared into the user", "responses": { "200": { "description": "reminder list" } } } },
    "/api/reminders/summary": { "get": { "summary": "Aggregate counts over the merged reminder set", "responses": { "200": { "description": "summary counts" } } } },
    "/api/reminders/{id}": {
      "get": { "summary": "Fetch one reminder", "responses": { "200": { "description": "reminder" }, "403": { "description": "access denied" }, "404": { "description": "not found" } } },
      "patch": { "summary": "Partial update (owner only)", "responses": { "200": { "description": "updated reminder" } } },
      "delete": { "summary": "Soft-delete (owner only)", "responses": { "200": { "description": "deleted" } } }
    },
    "/api/reminders/{id}/complete": { "post": { "summary": "Mark complete (owner or shared user)", "responses": { "200": { "description": "completed reminder" } } } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
