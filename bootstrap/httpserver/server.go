// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/orbs-network/call-tracker-go/config"
	"github.com/orbs-network/call-tracker-go/instrumentation/logfields"
	"github.com/orbs-network/call-tracker-go/instrumentation/metric"
	"github.com/orbs-network/call-tracker-go/services"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/scribe/log"
	"golang.org/x/time/rate"
)

var LogTag = log.String("adapter", "http-server")

type HttpServer struct {
	httpServer     *http.Server
	logger         log.Logger
	publicApi      services.PublicApi
	metricRegistry metric.Registry
	config         config.HttpServerConfig
	limiter        *rate.Limiter
	metrics        *metrics

	port   int
	closed chan struct{}
}

type metrics struct {
	requestTime *metric.Histogram
	requests    *metric.Rate
	rateLimited *metric.Rate
	serverError *metric.Rate
}

func newMetrics(factory metric.Factory) *metrics {
	return &metrics{
		requestTime: factory.NewLatency("HttpServer.RequestTime.Millis", 30*time.Second),
		requests:    factory.NewRate("HttpServer.Requests.Count"),
		rateLimited: factory.NewRate("HttpServer.RateLimited.Count"),
		serverError: factory.NewRate("HttpServer.ServerErrors.Count"),
	}
}

type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (net.Conn, error) {
	tc, err := ln.AcceptTCP()
	if err != nil {
		return nil, err
	}
	err = tc.SetKeepAlive(true)
	if err != nil {
		return nil, err
	}
	err = tc.SetKeepAlivePeriod(35 * time.Second)
	if err != nil {
		return nil, err
	}
	return tc, nil
}

func newServer(cfg config.HttpServerConfig, logger log.Logger, publicApi services.PublicApi, metricRegistry metric.Registry) *HttpServer {
	s := &HttpServer{
		logger:         logger.WithTags(LogTag),
		publicApi:      publicApi,
		metricRegistry: metricRegistry,
		config:         cfg,
		metrics:        newMetrics(metricRegistry),
		closed:         make(chan struct{}),
	}
	// zero disables the limit
	if rps := cfg.HttpRequestsPerSecond(); rps > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(rps), int(rps))
	}
	return s
}

// NewHttpServer blocks until the socket is listening and panics if it cannot listen.
func NewHttpServer(cfg config.HttpServerConfig, logger log.Logger, publicApi services.PublicApi, metricRegistry metric.Registry) *HttpServer {
	s := newServer(cfg, logger, publicApi, metricRegistry)

	listener, err := net.Listen("tcp", cfg.HttpAddress())
	if err != nil {
		panic(fmt.Sprintf("failed to start http server: %s", err.Error()))
	}
	s.port = listener.Addr().(*net.TCPAddr).Port
	s.httpServer = &http.Server{
		Handler:           s.createRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	govnr.Once(logfields.GovnrErrorer(s.logger), func() {
		defer close(s.closed)
		if err := s.httpServer.Serve(tcpKeepAliveListener{listener.(*net.TCPListener)}); err != nil && err != http.ErrServerClosed {
			s.logger.Error("http server stopped serving", log.Error(err))
		}
	})

	s.logger.Info("started http server", log.String("address", cfg.HttpAddress()), log.Int("port", s.port))
	return s
}

func (s *HttpServer) Port() int {
	return s.port
}

func (s *HttpServer) GracefulShutdown(shutdownContext context.Context) {
	if s.httpServer == nil {
		return
	}
	if err := s.httpServer.Shutdown(shutdownContext); err != nil {
		s.logger.Error("failed to stop http server gracefully", log.Error(err))
	}
}

func (s *HttpServer) WaitUntilShutdown(shutdownContext context.Context) {
	if s.httpServer == nil {
		return
	}
	select {
	case <-s.closed:
	case <-shutdownContext.Done():
		s.logger.Error("http server did not stop within shutdown context")
	}
}

func (s *HttpServer) createRouter() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.instrument)
	router.Use(cors)

	router.Get("/robots.txt", s.robots)
	router.Get("/health", s.health)
	router.Handle("/metrics", s.metricRegistry.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(s.limitRate)
		r.Post("/send-transaction", s.sendTransactionHandler)
		r.Post("/run-query", s.runQueryHandler)
		r.Get("/contracts/{contract}/balance", s.contractBalanceHandler)
		r.Post("/contracts/CallTracker/record-call", s.recordCallHandler)
		r.Get("/contracts/CallTracker/call-count/{account}", s.callCountHandler)
	})

	if s.config.Profiling() {
		router.Mount("/debug", middleware.Profiler())
	}

	return router
}

func (s *HttpServer) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.metrics.requests.Inc()
		s.metrics.requestTime.RecordSince(start)
		if ww.Status() >= http.StatusInternalServerError {
			s.metrics.serverError.Inc()
		}
		s.logger.Info("http request served",
			log.String("method", r.Method),
			log.String("path", r.URL.Path),
			log.Int("status", ww.Status()),
			log.String("duration", time.Since(start).String()))
	})
}

func (s *HttpServer) limitRate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter != nil && !s.limiter.Allow() {
			s.metrics.rateLimited.Inc()
			w.Header().Set("Retry-After", "1")
			s.writeError(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// allows handlers to be called via XHR requests from any host
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
