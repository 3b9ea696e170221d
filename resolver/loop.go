// Package resolver implements the resolver's request/response loop: one
// listening UDP socket, a cache consulted on every query, and an upstream
// round trip on a miss.
package resolver

import (
	"log/slog"
	"net"

	"github.com/pinedns/pinedns/cache"
	"github.com/pinedns/pinedns/clock"
	"github.com/pinedns/pinedns/metrics"
	"github.com/pinedns/pinedns/wire"
)

// maxDatagramSize bounds both the client-facing and upstream receive
// buffers; this resolver never negotiates a larger EDNS buffer size.
const maxDatagramSize = 512

// Loop owns the listening socket, the cache, and the upstream transport,
// and runs the single-threaded recv/resolve/send cycle. It holds no other
// mutable state across iterations.
type Loop struct {
	conn     *net.UDPConn
	upstream Upstream
	cache    cache.Cache
	metrics  metrics.Interface
	clock    clock.Clock
	logger   *slog.Logger
}

// New constructs a Loop bound to conn, forwarding misses to upstream.
func New(conn *net.UDPConn, upstream Upstream, c cache.Cache, m metrics.Interface, clk clock.Clock, logger *slog.Logger) *Loop {
	return &Loop{
		conn:     conn,
		upstream: upstream,
		cache:    c,
		metrics:  m,
		clock:    clk,
		logger:   logger,
	}
}

// Run services requests forever. It returns only when the listening
// socket itself fails — every per-iteration error is logged and the loop
// continues.
func (l *Loop) Run() error {
	buf := make([]byte, maxDatagramSize)

	for {
		n, peer, err := l.conn.ReadFromUDP(buf)
		if err != nil {
			l.logger.Error("listening socket failed", "error", err)
			return err
		}

		responseTimer := l.metrics.GetResponseTimer()
		response, err := l.handle(buf[:n])
		l.metrics.ObserveTimer(responseTimer)

		if err != nil {
			l.logger.Warn("failed to handle request", "peer", peer, "error", err)
			continue
		}
		if response == nil {
			continue
		}

		if _, err := l.conn.WriteToUDP(response, peer); err != nil {
			l.logger.Warn("failed to send response", "peer", peer, "error", err)
		}
	}
}

// handle runs one request through decode, cache-or-forward, and response
// construction, returning the bytes to send back to the client. A nil,
// nil return means the datagram was silently dropped (decode failure).
func (l *Loop) handle(raw []byte) ([]byte, error) {
	request, err := wire.DecodeMessage(raw, l.clock.Now())
	if err != nil {
		l.logger.Debug("dropping malformed datagram", "error", err)
		return nil, nil
	}

	question, err := request.FirstQuestion()
	if err != nil {
		l.logger.Debug("dropping request with no question", "error", err)
		return nil, nil
	}

	l.logger.Debug("decoded request", "name", question.Name.String(), "type", question.Type)

	cacheTimer := l.metrics.GetCacheReadTimer()
	fresh := l.cache.HasFresh(question)
	l.metrics.ObserveTimer(cacheTimer)

	if fresh {
		answer, ok := l.cache.Get(question)
		if ok {
			l.metrics.IncCacheHit()
			l.metrics.IncQueriesAnswered()
			response := wire.BuildResponse(request, []wire.ResourceRecord{answer})
			l.logger.Debug("answered from cache", "name", question.Name.String())
			return response.Raw, nil
		}
	}
	l.metrics.IncCacheMiss()

	return l.forward(request, question, raw)
}

// forward performs the upstream round trip for a cache miss, following
// the NXDOMAIN-passthrough rule: an NXDOMAIN reply is forwarded verbatim
// and never cached.
func (l *Loop) forward(request *wire.Message, question wire.Question, raw []byte) ([]byte, error) {
	forwardTimer := l.metrics.GetForwardTimer()
	upstreamRaw, err := l.upstream.Exchange(raw)
	l.metrics.ObserveTimer(forwardTimer)

	if err != nil {
		l.metrics.IncUpstreamFailure()
		return nil, err
	}

	upstreamResponse, err := wire.DecodeMessage(upstreamRaw, l.clock.Now())
	if err != nil {
		l.metrics.IncUpstreamFailure()
		return nil, err
	}

	if upstreamResponse.Header.RCode == 3 {
		l.metrics.IncNXDomainPassthrough()
		l.logger.Debug("forwarding NXDOMAIN verbatim", "name", question.Name.String())
		return upstreamResponse.Raw, nil
	}

	if len(upstreamResponse.Answers) == 0 {
		return nil, ErrUpstreamNoAnswer
	}

	answer := upstreamResponse.Answers[0]
	l.cache.Put(question, answer)

	response := wire.BuildResponse(request, []wire.ResourceRecord{answer})
	l.metrics.IncQueriesAnswered()
	l.logger.Debug("answered from upstream", "name", question.Name.String())
	return response.Raw, nil
}

