package app

import (
	"context"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"slices"
	"strings"
	"time"

	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/dlist/internal/cachemanager"
	"github.com/zjrosen/dlist/internal/registry"
	"github.com/zjrosen/dlist/internal/ui/styles"
)

// panelTTL bounds how long an unchanged panel stays cached.
const panelTTL = 5 * time.Minute

type panelKey string

// panelCache renders collection panels through go-cache. A panel is keyed by
// everything that affects its output, so changed values miss on their own and
// only a theme change needs a flush.
type panelCache = cachemanager.ReadThroughCache[panelKey, string, panelInput]

func newPanelCache() *panelCache {
	store := cachemanager.NewInMemoryCacheManager[panelKey, string]("panels", panelTTL, cachemanager.DefaultCleanupInterval)
	return cachemanager.NewReadThroughCache[panelKey, string, panelInput](store, renderPanel)
}

type panelInput struct {
	entry      registry.Snapshot
	selected   bool
	width      int
	backward   bool
	showLength bool
}

func (in panelInput) key() panelKey {
	h := fnv.New64a()
	var buf [8]byte
	for _, v := range in.entry.Values {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = h.Write(buf[:])
	}
	return panelKey(fmt.Sprintf("%s|%s|%d|%x|%d|%t|%t|%t",
		in.entry.ID, in.entry.Name, len(in.entry.Values), h.Sum64(),
		in.width, in.selected, in.backward, in.showLength))
}

func renderPanel(_ context.Context, in panelInput) (string, error) {
	title := in.entry.Name
	if in.selected {
		title = "> " + title
	}
	var footer string
	if in.showLength {
		footer = styles.FormatLength(len(in.entry.Values))
	}

	lines := []string{"→ " + renderChain(in.entry.Values)}
	if in.backward {
		reversed := slices.Clone(in.entry.Values)
		slices.Reverse(reversed)
		lines = append(lines, "← "+renderChain(reversed))
	}

	panel := styles.Panel{
		Title:      title,
		Footer:     footer,
		Width:      in.width,
		Height:     len(lines) + 2,
		Focused:    in.selected,
		TitleColor: styles.TextSecondaryColor,
		FocusColor: styles.BorderFocusColor,
	}
	return zone.Mark(panelZoneID(in.entry.ID), panel.Render(strings.Join(lines, "\n"))), nil
}

// panelZoneID names the click zone of a collection panel. Entry IDs survive
// index shifts, so cached panels keep valid marks.
func panelZoneID(entryID string) string {
	return "panel:" + entryID
}
