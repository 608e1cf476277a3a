package tui

import (
	"github.com/mkarren/lanes/internal/model"
)

// pageFetchedMsg delivers one fetched page back to its row. gen guards
// against pages from a retrieval that has since been restarted.
type pageFetchedMsg struct {
	row  int
	gen  int
	page model.ItemPage
}

// pageFailedMsg delivers a page fetch failure.
type pageFailedMsg struct {
	row int
	gen int
	err error
}

// imageLoadedMsg reports a completed image fetch for one card slot.
type imageLoadedMsg struct {
	row   int
	index int
	url   string
	tint  string
}

// imageSettleMsg fires after the settle delay: a slot still waiting on
// this url falls back to its placeholder until the load lands.
type imageSettleMsg struct {
	row   int
	index int
	url   string
}

// imageFailedMsg reports a failed image fetch for one card slot.
type imageFailedMsg struct {
	row   int
	index int
	url   string
	err   error
}

// randomItemMsg delivers the result of a random-item button press.
type randomItemMsg struct {
	item model.Item
	err  error
}

// resumeTickMsg fires after the post-resume delay. gen ties it to the
// resume that scheduled it; a stale tick is dropped.
type resumeTickMsg struct {
	gen int
}

// noticeExpiredMsg clears the transient notice line.
type noticeExpiredMsg struct{}
