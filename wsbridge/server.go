// Package wsbridge serves the facade to JavaScript hosts over a websocket.
//
// Each text frame carries one request:
//
//	{"id": "1", "op": "searchContacts", "args": ["ana", 3, 0, 20]}
//
// and is answered, possibly out of order, with exactly one response that
// echoes the id and holds either result or error.
package wsbridge

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/gorilla/websocket"
	"github.com/spachava753/cmbridge/cmerr"
	"github.com/spachava753/cmbridge/service"
)

// Request is one call.
type Request struct {
	ID   string          `json:"id"`
	Op   string          `json:"op"`
	Args json.RawMessage `json:"args,omitempty"`
}

// Response settles one Request.
type Response struct {
	ID     string          `json:"id"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *ErrorBody      `json:"error,omitempty"`
}

// ErrorBody is the error half of a Response.
type ErrorBody struct {
	Code    string             `json:"code"`
	Kind    cmerr.Kind         `json:"kind"`
	Op      string             `json:"op,omitempty"`
	Message string             `json:"message"`
	Fields  []cmerr.FieldError `json:"fields,omitempty"`
}

const readLimit = 1 << 20

// Server is an http.Handler that upgrades to a websocket and dispatches
// requests to the facade.
type Server struct {
	facade   *service.Facade
	logger   log.Interface
	upgrader websocket.Upgrader
}

// NewServer returns a Server. A nil logger uses log.Log. Cross-origin
// upgrades are refused unless the origin is in allowedOrigins.
func NewServer(facade *service.Facade, logger log.Interface, allowedOrigins ...string) *Server {
	if logger == nil {
		logger = log.Log
	}
	allowed := map[string]bool{}
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &Server{
		facade: facade,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed[origin]
			},
		},
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.WithError(err).Warn("wsbridge: upgrade failed")
		return
	}
	conn.SetReadLimit(readLimit)
	s.logger.WithField("remote", r.RemoteAddr).Info("wsbridge: client connected")
	s.serveConn(r.Context(), conn)
	s.logger.WithField("remote", r.RemoteAddr).Info("wsbridge: client disconnected")
}

func (s *Server) serveConn(ctx context.Context, conn *websocket.Conn) {
	defer conn.Close()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		writeMu sync.Mutex
		pending sync.WaitGroup
	)
	write := func(resp Response) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteJSON(resp); err != nil {
			s.logger.WithError(err).Debug("wsbridge: write failed")
		}
	}

	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			var (
				syntaxErr *json.SyntaxError
				typeErr   *json.UnmarshalTypeError
			)
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) {
				write(Response{Error: errorBody(cmerr.Invalid("request", "must be a JSON object"))})
				continue
			}
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.WithError(err).Debug("wsbridge: read failed")
			}
			break
		}
		if err := checkRequest(req); err != nil {
			write(Response{ID: req.ID, Error: errorBody(err)})
			continue
		}
		pending.Add(1)
		go func(req Request) {
			defer pending.Done()
			write(s.handle(ctx, req))
		}(req)
	}
	cancel()
	pending.Wait()
}

func checkRequest(req Request) error {
	var problems []cmerr.FieldError
	if req.ID == "" {
		problems = append(problems, cmerr.FieldError{Field: "id", Msg: "is required"})
	}
	if req.Op == "" {
		problems = append(problems, cmerr.FieldError{Field: "op", Msg: "is required"})
	}
	if len(problems) > 0 {
		return cmerr.Validation(problems...)
	}
	return nil
}

func (s *Server) handle(ctx context.Context, req Request) Response {
	out, err := s.facade.Dispatch(ctx, req.Op, req.Args)
	if err != nil {
		return Response{ID: req.ID, Error: errorBody(err)}
	}
	body, err := json.Marshal(out)
	if err != nil {
		return Response{ID: req.ID, Error: errorBody(err)}
	}
	return Response{ID: req.ID, Result: body}
}

func errorBody(err error) *ErrorBody {
	var e *cmerr.Error
	if !errors.As(err, &e) {
		return &ErrorBody{Code: "unknown_error", Kind: cmerr.KindBoundary, Message: err.Error()}
	}
	return &ErrorBody{
		Code:    e.Code,
		Kind:    e.Kind,
		Op:      e.Op,
		Message: e.Error(),
		Fields:  e.Fields,
	}
}

// ListenAndServe serves s on addr at path "/" until ctx is done.
func ListenAndServe(ctx context.Context, addr string, s *Server) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}
