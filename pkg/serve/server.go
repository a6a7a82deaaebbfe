// Package serve exposes search and selection over newline-delimited JSON,
// one request per line on the input and one response per line on the output.
package serve

import (
	"bufio"
	"context"
	"encoding/json"
	"io"

	"github.com/praetorian-inc/strmatch/pkg/harness"
	"github.com/praetorian-inc/strmatch/pkg/selector"
	"github.com/rs/zerolog"
)

// Version is the server protocol version
const Version = "1.0.0"

// Server answers NDJSON requests with a harness runner
type Server struct {
	runner  *harness.Runner
	encoder *json.Encoder
	decoder *json.Decoder
	logger  zerolog.Logger
}

// NewServer creates a new streaming server
func NewServer(runner *harness.Runner, in io.Reader, out io.Writer, logger zerolog.Logger) *Server {
	return &Server{
		runner:  runner,
		encoder: json.NewEncoder(out),
		decoder: json.NewDecoder(bufio.NewReader(in)),
		logger:  logger,
	}
}

// Run starts the server main loop. It returns nil when the input ends or a
// close request arrives, and ctx.Err() when ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.sendReady()

	reqChan := make(chan Request, 1)
	errChan := make(chan error, 1)

	go func() {
		for {
			var req Request
			if err := s.decoder.Decode(&req); err != nil {
				errChan <- err
				return
			}
			select {
			case reqChan <- req:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errChan:
			// Drain any pending requests before handling EOF
			for {
				select {
				case req := <-reqChan:
					if s.processRequest(ctx, req) {
						return nil
					}
				default:
					if err == io.EOF {
						return nil
					}
					s.sendError("decode", err.Error())
					return nil
				}
			}
		case req := <-reqChan:
			if s.processRequest(ctx, req) {
				return nil
			}
		}
	}
}

// processRequest handles a single request and returns true if the server should exit
func (s *Server) processRequest(ctx context.Context, req Request) bool {
	s.logger.Debug().Str("type", req.Type).Msg("request")

	switch req.Type {
	case "search":
		s.handleSearch(ctx, req.Payload)
	case "select":
		s.handleSelect(req.Payload)
	case "algorithms":
		s.send("algorithms", AlgorithmsData{Algorithms: s.runner.Registry().Names()})
	case "close":
		return true
	default:
		s.sendError("unknown", "unknown request type: "+req.Type)
	}
	return false
}

func (s *Server) sendReady() {
	s.send("ready", ReadyData{Version: Version, Strategy: s.runner.Selector().Describe()})
}

func (s *Server) handleSearch(ctx context.Context, payload json.RawMessage) {
	var p SearchPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		s.sendError("search", err.Error())
		return
	}

	var (
		result *harness.Result
		err    error
	)
	if p.Algorithm != "" {
		result, err = s.runner.RunWith(ctx, p.Algorithm, p.Text, p.Pattern)
	} else {
		result, err = s.runner.Run(ctx, p.Text, p.Pattern)
	}
	if err != nil {
		s.sendError("search", err.Error())
		return
	}
	s.send("search", result)
}

func (s *Server) handleSelect(payload json.RawMessage) {
	var p SelectPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		s.sendError("select", err.Error())
		return
	}

	sel := s.runner.Selector()
	name, ok := sel.Select(p.Text, p.Pattern)
	data := SelectData{
		Algorithm: name,
		Chosen:    ok,
		Strategy:  sel.Describe(),
	}
	if scorer, isScore := sel.(*selector.ScoreSelector); isScore {
		fv, scores := scorer.Scores(p.Text, p.Pattern)
		data.Features = &fv
		data.Scores = scores
	}
	s.send("select", data)
}

func (s *Server) send(respType string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.sendError(respType, err.Error())
		return
	}
	if err := s.encoder.Encode(Response{
		Success: true,
		Type:    respType,
		Data:    data,
	}); err != nil {
		s.logger.Warn().Err(err).Str("type", respType).Msg("failed to write response")
	}
}

func (s *Server) sendError(reqType, msg string) {
	if err := s.encoder.Encode(Response{
		Success: false,
		Type:    reqType,
		Error:   msg,
	}); err != nil {
		s.logger.Warn().Err(err).Str("type", reqType).Msg("failed to write response")
	}
}
