package dispatchfakes

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/vlad-iobagiu/sitecore-ordecloud-mcp/dispatch"
)

var _ dispatch.Executor = (*FakeExecutor)(nil)

// FakeExecutor records every request it receives and replies with a
// canned handler, letting facade and server tests run without HTTP.
type FakeExecutor struct {
	lock     sync.Mutex
	requests []dispatch.Request

	// Handler produces the response body for a request. When nil an
	// empty JSON object is returned.
	Handler func(req dispatch.Request) (json.RawMessage, error)
}

func NewFakeExecutor() *FakeExecutor {
	return &FakeExecutor{}
}

func (f *FakeExecutor) Execute(ctx context.Context, req dispatch.Request, out any) error {
	f.lock.Lock()
	f.requests = append(f.requests, req)
	f.lock.Unlock()

	body := json.RawMessage(`{}`)
	if f.Handler != nil {
		var err error
		body, err = f.Handler(req)
		if err != nil {
			return err
		}
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

// Requests returns a copy of every request executed so far.
func (f *FakeExecutor) Requests() []dispatch.Request {
	f.lock.Lock()
	defer f.lock.Unlock()
	return append([]dispatch.Request(nil), f.requests...)
}

// LastRequest returns the most recent request, or a zero Request.
func (f *FakeExecutor) LastRequest() dispatch.Request {
	f.lock.Lock()
	defer f.lock.Unlock()
	if len(f.requests) == 0 {
		return dispatch.Request{}
	}
	return f.requests[len(f.requests)-1]
}
