package service

// Refresher tells connected clients to re-read every panel.
type Refresher interface {
	Refresh(reason string)
}

type noopRefresher struct{}

func (noopRefresher) Refresh(string) {}

func orNoop(r Refresher) Refresher {
	if r == nil {
		return noopRefresher{}
	}
	return r
}
