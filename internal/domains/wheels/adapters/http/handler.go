// Package http exposes the wheels use cases over gin: the form page, the
// generate-and-download flow, and the generation history.
package http

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tactilelab/wheelforge/internal/domains/wheels/application"
	"github.com/tactilelab/wheelforge/internal/domains/wheels/domain"
	"github.com/tactilelab/wheelforge/internal/domains/wheels/ports"
	apierrors "github.com/tactilelab/wheelforge/internal/shared/errors"
)

//go:embed templates/index.html
var templatesFS embed.FS

// Templates parses the embedded form pages for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}

// WheelAPI wires HTTP transport with the wheels service.
type WheelAPI struct {
	service      ports.Service
	historyLimit int
}

// NewWheelAPI creates a WheelAPI backed by the provided service.
func NewWheelAPI(service ports.Service, historyLimit int) WheelAPI {
	return WheelAPI{service: service, historyLimit: historyLimit}
}

// Get /
// Renders the distance entry form.
func (api *WheelAPI) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"MaxDistanceMM": domain.MaxDistanceMM,
	})
}

// Post /generate (also the legacy Post /)
// Parses the form payload, generates the mesh, and streams it as a download.
func (api *WheelAPI) Generate(c *gin.Context) {
	raw := c.PostForm("distances_mm")
	if raw == "" {
		// Field name used by the first form revision.
		raw = c.PostForm("distances")
	}

	artifact, err := api.service.Generate(c.Request.Context(), ports.GenerateInput{RawDistances: raw})
	if err != nil {
		if errors.Is(err, application.ErrInvalidInput) {
			apierrors.BadRequest(c, err)
			return
		}
		apierrors.Internal(c, err)
		return
	}
	defer func() {
		if err := artifact.Cleanup(); err != nil {
			// A failed RemoveAll leaks the staging dir, worth surfacing.
			slog.Warn("artifact cleanup failed", slog.String("path", artifact.Path), slog.Any("error", err))
		}
	}()

	c.Header("Content-Disposition", `attachment; filename="`+artifact.Filename+`"`)
	c.Header("Content-Type", artifact.ContentType)
	c.File(artifact.Path)
}

// Get /history
// Lists recent generations as JSON, newest first.
func (api *WheelAPI) History(c *gin.Context) {
	records, err := api.service.History(c.Request.Context(), api.historyLimit)
	if err != nil {
		apierrors.Internal(c, err)
		return
	}
	out := make([]generationView, 0, len(records))
	for _, rec := range records {
		out = append(out, toGenerationView(rec))
	}
	c.JSON(http.StatusOK, out)
}

type generationView struct {
	ID            int64     `json:"id"`
	DistancesMM   []float64 `json:"distances_mm"`
	TriangleCount int       `json:"triangle_count"`
	SizeBytes     int64     `json:"size_bytes"`
	DurationMs    int64     `json:"duration_ms"`
	CreatedAt     time.Time `json:"created_at"`
}

func toGenerationView(gen *domain.Generation) generationView {
	return generationView{
		ID:            gen.ID,
		DistancesMM:   append([]float64{}, gen.Distances...),
		TriangleCount: gen.TriangleCount,
		SizeBytes:     gen.SizeBytes,
		DurationMs:    gen.Duration.Milliseconds(),
		CreatedAt:     gen.CreatedAt,
	}
}
