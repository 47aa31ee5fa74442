package websocket

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/roberte777/fluid-sim/app"
	"github.com/roberte777/fluid-sim/fluid"
)

//Frame is the per-tick read surface pushed to every client: particle
//positions for placement, radius and domain extents for visual scaling.
type Frame struct {
	Positions [][2]float32 `json:"positions"`
	Radius    float32      `json:"radius"`
	Width     float32      `json:"width"`
	Height    float32      `json:"height"`
}

//Param is the write surface: any subset of the UI editable scalars.
type Param struct {
	Radius  *float32 `json:"radius,omitempty"`
	Damping *float32 `json:"damping,omitempty"`
	Width   *float32 `json:"width,omitempty"`
	Height  *float32 `json:"height,omitempty"`
}

//A server application calls the Upgrade method from an HTTP request handler
//to initiate a connection
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type Server struct {
	scene    *app.Scene
	interval time.Duration
}

//Init starts the parameter/snapshot server on addr. Blocks.
func Init(addr string, scene *app.Scene) error {
	s := &Server{scene: scene, interval: 33 * time.Millisecond}
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.wsHandler)

	log.Printf("fluid parameter server listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}

//wsHandler defines the websocket connection endpoint
func (s *Server) wsHandler(w http.ResponseWriter, r *http.Request) {
	upgrader.CheckOrigin = func(r *http.Request) bool { return true }

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		if _, ok := err.(websocket.HandshakeError); !ok {
			log.Println(err)
		}
		return
	}

	go s.readSocket(conn)
	s.writeSocket(conn)
}

//readSocket listens for parameter writes and queues them onto the scene,
//to be applied between ticks
func (s *Server) readSocket(conn *websocket.Conn) {
	defer conn.Close()

	for {
		var p Param
		if err := conn.ReadJSON(&p); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error: %v", err)
			}
			return
		}
		if p.Radius != nil {
			s.scene.Queue(app.Edit{Kind: app.ParamRadius, Value: *p.Radius})
		}
		if p.Damping != nil {
			s.scene.Queue(app.Edit{Kind: app.ParamDamping, Value: *p.Damping})
		}
		if p.Width != nil {
			s.scene.Queue(app.Edit{Kind: app.ParamWidth, Value: *p.Width})
		}
		if p.Height != nil {
			s.scene.Queue(app.Edit{Kind: app.ParamHeight, Value: *p.Height})
		}
	}
}

//writeSocket pushes the latest published snapshot at a fixed cadence
func (s *Server) writeSocket(conn *websocket.Conn) {
	defer conn.Close()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	snap := fluid.Snapshot{}
	for range ticker.C {
		s.scene.Snapshot(&snap)

		frame := Frame{
			Positions: make([][2]float32, len(snap.Positions)),
			Width:     snap.Width,
			Height:    snap.Height,
		}
		if len(snap.Radii) > 0 {
			frame.Radius = snap.Radii[0]
		}
		for i, p := range snap.Positions {
			frame.Positions[i] = [2]float32{p[0], p[1]}
		}
		if err := conn.WriteJSON(frame); err != nil {
			return
		}
	}
}
