package http

import "github.com/gin-gonic/gin"

// GeneratePath is the generation route under the API group.
const GeneratePath = "/checklists/generate"

// Register registers the checklist routes. Every method is routed to the
// handler so that non-POST requests get the JSON 405 body.
func (h *Handler) Register(rg gin.IRoutes) {
	rg.Any(GeneratePath, h.GenerateChecklist)
}
