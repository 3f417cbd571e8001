package main

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type tracerSpy struct {
	calls chan struct{}
}

func newTracerSpy() *tracerSpy {
	return &tracerSpy{calls: make(chan struct{}, 1)}
}

func (s *tracerSpy) shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		return context.DeadlineExceeded
	}
	s.calls <- struct{}{}
	return nil
}

func (s *tracerSpy) called() bool {
	select {
	case <-s.calls:
		return true
	default:
		return false
	}
}

func TestServe_ListenFailureFlushesTracer(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer busy.Close()

	spy := newTracerSpy()
	server := &http.Server{Addr: busy.Addr().String(), Handler: http.NotFoundHandler()}

	err = serve(context.Background(), zap.NewNop(), server, time.Second, spy.shutdown)
	if err == nil {
		t.Fatal("expected listen error")
	}
	if !spy.called() {
		t.Fatal("expected tracer shutdown after listen failure")
	}
}

func TestServe_CancelFlushesTracer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	spy := newTracerSpy()
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	if err := serve(ctx, zap.NewNop(), server, time.Second, spy.shutdown); err != nil {
		t.Fatalf("expected clean shutdown, got %v", err)
	}
	if !spy.called() {
		t.Fatal("expected tracer shutdown after cancel")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{in: "debug", want: zapcore.DebugLevel},
		{in: " WARN ", want: zapcore.WarnLevel},
		{in: "warning", want: zapcore.WarnLevel},
		{in: "error", want: zapcore.ErrorLevel},
		{in: "", want: zapcore.InfoLevel},
		{in: "verbose", want: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseLogLevel(tt.in); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
