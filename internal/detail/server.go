// Package detail serves the drill-down views opened from the dashboard in
// a separate browsing context. The detail page renders whatever parameter
// snapshot arrives in its query string, so a detail URL is self-contained
// and shareable; gaps fall back to the live store.
package detail

import (
	"context"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jackyw99/NR-NTN-satellite/internal/metrics"
	"github.com/jackyw99/NR-NTN-satellite/internal/params"
)

// ParamSource is the narrow store contract the detail server needs.
type ParamSource interface {
	Snapshot() map[string]string
	Float(key string, fallback float64) float64
	Int(key string, fallback int) int
}

// Server hosts the detail pages and a small JSON API over the live
// parameter snapshot.
type Server struct {
	addr      string
	source    ParamSource
	server    *http.Server
	listener  net.Listener
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// New creates a detail server bound to addr (host:port). An empty addr
// defaults to localhost on an ephemeral port.
func New(addr string, source ParamSource) *Server {
	if addr == "" {
		addr = "127.0.0.1:0"
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:   addr,
		source: source,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start begins serving in the background. The bound address is available
// from Addr afterwards.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	s.registerRoutes(r)

	s.server = &http.Server{
		Handler:           r,
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = listener
	s.startTime = time.Now()

	go s.server.Serve(listener)
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the bound listen address, or the configured address before
// Start has run.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// URL builds the drill-down URL for the given query values against this
// server.
func (s *Server) URL(q url.Values) string {
	return fmt.Sprintf("http://%s/detail?%s", s.Addr(), q.Encode())
}

func (s *Server) registerRoutes(r *gin.Engine) {
	r.GET("/detail", s.handleDetail)
	r.GET("/api/params", s.handleParams)
	r.GET("/api/health", s.handleHealth)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(s.startTime).String(),
	})
}

func (s *Server) handleParams(c *gin.Context) {
	c.JSON(http.StatusOK, s.source.Snapshot())
}

// detailRow is one labelled parameter line on the detail page.
type detailRow struct {
	Label string
	Value string
	Unit  string
}

type detailView struct {
	Title      string
	DetailType string
	DetailID   string
	Rows       []detailRow
	SNRdB      float64
	PowerDBm   float64
	Quality    string
	AreaKm2    float64
	Handover   float64
}

func (s *Server) handleDetail(c *gin.Context) {
	q := c.Request.URL.Query()

	// Query values win; the live store fills any gap.
	live := s.source.Snapshot()
	get := func(key string) string {
		if v := q.Get(key); v != "" {
			return v
		}
		return live[key]
	}

	view := detailView{
		Title:      "NTN Dashboard Detail",
		DetailType: q.Get(params.KeyDetailType),
		DetailID:   q.Get(params.KeyDetailID),
	}

	for _, def := range params.Definitions() {
		view.Rows = append(view.Rows, detailRow{
			Label: def.Label,
			Value: get(def.Key),
			Unit:  def.Unit,
		})
	}

	carrier := parseFloat(get(params.KeyCarrierFrequency), metrics.ReferenceFrequencyGHz)
	satCount := parseInt(get(params.KeySatelliteCount), 1)

	view.SNRdB = metrics.SignalNoiseRatio(carrier)
	view.PowerDBm = metrics.ReceivedPower(carrier)
	view.Quality = metrics.Classify(view.SNRdB).String()
	view.AreaKm2 = metrics.CoverageArea(satCount)
	view.Handover = metrics.HandoverSuccessRatePct

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := detailTemplate.Execute(c.Writer, view); err != nil {
		_ = c.Error(err)
	}
}

func parseFloat(s string, fallback float64) float64 {
	var v float64
	if _, err := fmt.Sscanf(s, "%f", &v); err != nil {
		return fallback
	}
	return v
}

func parseInt(s string, fallback int) int {
	var v int
	if _, err := fmt.Sscanf(s, "%d", &v); err != nil {
		return fallback
	}
	return v
}

var detailTemplate = template.Must(template.New("detail").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: monospace; background: #10141f; color: #d8dee9; margin: 2em; }
h1 { color: #6ee7b7; }
table { border-collapse: collapse; }
td { padding: 4px 14px 4px 0; }
.metric { color: #7dd3fc; }
.tag { color: #fbbf24; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{if .DetailType}}<p class="tag">{{.DetailType}}{{if .DetailID}} / {{.DetailID}}{{end}}</p>{{end}}
<h2>Parameters</h2>
<table>
{{range .Rows}}<tr><td>{{.Label}}</td><td>{{.Value}} {{.Unit}}</td></tr>
{{end}}</table>
<h2>Derived</h2>
<table>
<tr><td>SNR</td><td class="metric">{{printf "%.1f" .SNRdB}} dB ({{.Quality}})</td></tr>
<tr><td>Received power</td><td class="metric">{{printf "%.1f" .PowerDBm}} dBm</td></tr>
<tr><td>Coverage area</td><td class="metric">{{printf "%.0f" .AreaKm2}} km&sup2;</td></tr>
<tr><td>Handover success</td><td class="metric">{{printf "%.1f" .Handover}} %</td></tr>
</table>
</body>
</html>
`))
