// Package nav is the screen-navigation state machine: a fixed destination
// table, a back stack, and the redirect rules layered on top of plain
// push/pop. It owns no data fetching; screens do their own.
package nav

import (
	"Cocktail-Companion/domain"
	"fmt"
	"net/url"
	"strings"
	"sync"
)

type Destination string

const (
	Home           Destination = "home"
	Gemini         Destination = "gemini"
	Random         Destination = "random"
	Categories     Destination = "list"
	Cocktails      Destination = "cocktails"
	CocktailDetail Destination = "cocktailDetail"
	Favorites      Destination = "favorites"
	Search         Destination = "search"
	Creation       Destination = "creation"
	CreatedList    Destination = "created_cocktails_list"
)

// Entry is one back-stack frame. Param carries the category or drink id for
// the two parameterized destinations, decoded.
type Entry struct {
	Destination Destination `json:"destination"`
	Param       string      `json:"param,omitempty"`
}

func (e Entry) Route() string {
	if e.Param == "" {
		return string(e.Destination)
	}
	return string(e.Destination) + "/" + url.PathEscape(e.Param)
}

type Navigator struct {
	mu    sync.Mutex
	stack []Entry
}

// NewNavigator starts at the home destination. The graph has no terminal
// state; the stack never empties below the start entry.
func NewNavigator() *Navigator {
	return &Navigator{stack: []Entry{{Destination: Home}}}
}

// Navigate resolves a route string and pushes the resulting destination.
// Entering the "My Creations" category is intercepted: the stack is popped
// back to the category list (which stays) and the local creations list is
// pushed instead, so back never lands on an unreachable remote listing.
func (n *Navigator) Navigate(route string) (Entry, error) {
	entry, err := parseRoute(route)
	if err != nil {
		return Entry{}, err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if entry.Destination == Cocktails && entry.Param == domain.MyCreationsCategory {
		n.popUpTo(Categories, false)
		entry = Entry{Destination: CreatedList}
	}

	n.stack = append(n.stack, entry)
	return entry, nil
}

// Back pops the current entry. Returns false at the root, where only process
// termination exits the graph.
func (n *Navigator) Back() (Entry, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.stack) <= 1 {
		return n.stack[0], false
	}
	n.stack = n.stack[:len(n.stack)-1]
	return n.stack[len(n.stack)-1], true
}

func (n *Navigator) Current() Entry {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack[len(n.stack)-1]
}

func (n *Navigator) Stack() []Entry {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Entry, len(n.stack))
	copy(out, n.stack)
	return out
}

// CompleteCreation is the post-submit transition of the creation form: the
// form entry is removed from the stack and the creations list takes its
// place, so back navigation can never return to the submitted form.
func (n *Navigator) CompleteCreation() Entry {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.popUpTo(Creation, true)
	entry := Entry{Destination: CreatedList}
	n.stack = append(n.stack, entry)
	return entry
}

// popUpTo pops entries until dest is on top; inclusive also pops dest itself.
// The start entry is never removed.
func (n *Navigator) popUpTo(dest Destination, inclusive bool) {
	for i := len(n.stack) - 1; i >= 0; i-- {
		if n.stack[i].Destination != dest {
			continue
		}
		if inclusive && i > 0 {
			n.stack = n.stack[:i]
		} else {
			n.stack = n.stack[:i+1]
		}
		return
	}
}

func parseRoute(route string) (Entry, error) {
	route = strings.TrimPrefix(strings.TrimSpace(route), "/")

	dest, param, hasParam := strings.Cut(route, "/")
	if hasParam {
		decoded, err := url.PathUnescape(param)
		if err == nil {
			param = decoded
		}
		switch Destination(dest) {
		case Cocktails, CocktailDetail:
			return Entry{Destination: Destination(dest), Param: param}, nil
		}
		return Entry{}, fmt.Errorf("%w: %s", domain.ErrUnknownDestination, route)
	}

	switch Destination(dest) {
	case Home, Gemini, Random, Categories, Favorites, Search, Creation, CreatedList:
		return Entry{Destination: Destination(dest)}, nil
	}
	return Entry{}, fmt.Errorf("%w: %s", domain.ErrUnknownDestination, route)
}
