package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// TileUpdate is sent via SSE each time a tile finishes
type TileUpdate struct {
	TileX      int    `json:"tileX"`
	TileY      int    `json:"tileY"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	ImageData  string `json:"imageData"` // Base64 encoded PNG of just this tile
	TileNumber int    `json:"tileNumber"`
	TotalTiles int    `json:"totalTiles"`
}

// CompleteUpdate is the final SSE event of a successful render
type CompleteUpdate struct {
	TotalPixels    int     `json:"totalPixels"`
	Tiles          int     `json:"tiles"`
	Workers        int     `json:"workers"`
	MaxDepth       int     `json:"maxDepth"`
	ElapsedMs      int64   `json:"elapsedMs"`
	PixelsPerMs    float64 `json:"pixelsPerMs"`
	DroppedConsole int64   `json:"droppedConsole"`
}

// SSEEvent is a single event written by the stream writer
type SSEEvent struct {
	Type string `json:"type"` // "console", "tile", "complete", "error"
	Data string `json:"data"` // JSON-encoded data
}

// handleRender renders a scene and streams each finished tile via SSE
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)
	ctx := r.Context()

	events := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeSSEEvents(ctx, w, events)
	}()
	defer func() {
		close(events)
		<-writerDone
	}()

	req, err := s.parseSceneRequest(r.URL.Query())
	if err != nil {
		s.sendEvent(ctx, events, "error", fmt.Sprintf("Invalid request: %v", err))
		return
	}
	depth, err := parseIntParam(r.URL.Query(), "depth", renderer.DefaultRenderConfig().MaxDepth, 0, MaxDepth)
	if err != nil {
		s.sendEvent(ctx, events, "error", fmt.Sprintf("Invalid request: %v", err))
		return
	}

	consoleChan := make(chan ConsoleMessage, 50)
	logger := NewWebLogger(fmt.Sprintf("render-%d", time.Now().UnixNano()), consoleChan)
	var consoleWG sync.WaitGroup
	consoleWG.Add(1)
	go func() {
		defer consoleWG.Done()
		s.streamConsoleMessages(ctx, consoleChan, events)
	}()

	stats, err := s.render(ctx, req, depth, logger, events)

	// Nothing logs after render returns
	close(consoleChan)
	consoleWG.Wait()

	if err != nil {
		s.sendEvent(ctx, events, "error", fmt.Sprintf("Rendering failed: %v", err))
		return
	}
	s.sendJSON(ctx, events, "complete", CompleteUpdate{
		TotalPixels:    stats.TotalPixels,
		Tiles:          stats.Tiles,
		Workers:        stats.Workers,
		MaxDepth:       stats.MaxDepth,
		ElapsedMs:      stats.Duration.Milliseconds(),
		PixelsPerMs:    stats.PixelsPerMillisecond(),
		DroppedConsole: logger.Dropped(),
	})
}

// render builds the scene and runs the raytracer, queuing one event per tile
func (s *Server) render(ctx context.Context, req *SceneRequest, depth int, logger *WebLogger, events chan<- SSEEvent) (renderer.RenderStats, error) {
	sceneObj, err := s.createScene(req, logger)
	if err != nil {
		return renderer.RenderStats{}, err
	}

	raytracer := renderer.NewRaytracer(sceneObj.Camera, sceneObj.World, renderConfig(depth), logger)
	totalTiles := len(renderer.NewTileGrid(req.Width, req.Height, DefaultTileSize))
	finished := 0

	// onTile is never called concurrently
	onTile := func(tile renderer.Tile, c *canvas.Canvas) {
		finished++
		s.sendTileUpdate(ctx, events, tile, c.RegionImage(tile.Bounds), finished, totalTiles)
	}

	_, stats, err := raytracer.Render(ctx, onTile)
	return stats, err
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// writeSSEEvents is the only goroutine that writes to w. It returns when
// events is closed or the client disconnects.
func (s *Server) writeSSEEvents(ctx context.Context, w http.ResponseWriter, events <-chan SSEEvent) {
	flusher, _ := w.(http.Flusher)
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
				return
			}
			if flusher != nil {
				flusher.Flush()
			}
		case <-ctx.Done():
			return
		}
	}
}

// streamConsoleMessages forwards log lines until consoleChan is closed.
// Lines are dropped rather than blocking the render when the stream is backed up.
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan <-chan ConsoleMessage, events chan<- SSEEvent) {
	for msg := range consoleChan {
		data, err := json.Marshal(msg)
		if err != nil {
			log.Printf("Error marshaling console message: %v", err)
			continue
		}
		select {
		case events <- SSEEvent{Type: "console", Data: string(data)}:
		case <-ctx.Done():
		default:
		}
	}
}

// sendTileUpdate encodes a finished tile and queues it
func (s *Server) sendTileUpdate(ctx context.Context, events chan<- SSEEvent, tile renderer.Tile, img image.Image, number, total int) {
	tileData, err := imageToBase64PNG(img)
	if err != nil {
		log.Printf("Error encoding tile %d: %v", tile.ID, err)
		return
	}
	s.sendJSON(ctx, events, "tile", TileUpdate{
		TileX:      tile.Bounds.Min.X,
		TileY:      tile.Bounds.Min.Y,
		Width:      tile.Bounds.Dx(),
		Height:     tile.Bounds.Dy(),
		ImageData:  tileData,
		TileNumber: number,
		TotalTiles: total,
	})
}

func (s *Server) sendJSON(ctx context.Context, events chan<- SSEEvent, eventType string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Error marshaling %s event: %v", eventType, err)
		return
	}
	s.sendEvent(ctx, events, eventType, string(data))
}

// sendEvent queues an event, giving up if the client disconnects
func (s *Server) sendEvent(ctx context.Context, events chan<- SSEEvent, eventType, data string) {
	select {
	case events <- SSEEvent{Type: eventType, Data: data}:
	case <-ctx.Done():
	}
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
