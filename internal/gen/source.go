package gen

import "context"

// Source produces level payloads. The host requests the next payload when a
// level is completed; the simulation never blocks on it.
type Source interface {
	Next(ctx context.Context, p Params) (string, error)
}

type localSource struct {
	g *Generator
}

// LocalSource wraps the procedural generator as a Source.
func LocalSource(seed int64) Source {
	return &localSource{g: NewGenerator(seed)}
}

func (s *localSource) Next(_ context.Context, p Params) (string, error) {
	return s.g.Generate(p)
}

type remoteSource struct {
	c *Client
}

// RemoteSource wraps the remote service client as a Source.
func RemoteSource(c *Client) Source {
	return &remoteSource{c: c}
}

func (s *remoteSource) Next(ctx context.Context, p Params) (string, error) {
	return s.c.Generate(ctx, p)
}
