package harness

import (
	"fmt"
	"io"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// infoEntry is one named piece of diagnostic context. Persistent entries
// survive passing assertions within a test case; everything is discarded when
// a new test case starts.
type infoEntry struct {
	name       string
	value      ldvalue.Value
	persistent bool
}

// infoStore keeps entries in insertion order so failure reports read the way
// the test attached them. An upsert keeps the original position of the name.
type infoStore struct {
	entries []infoEntry
	index   map[string]int
}

func newInfoStore() *infoStore {
	return &infoStore{index: make(map[string]int)}
}

func (st *infoStore) set(name string, value interface{}, persistent bool) {
	entry := infoEntry{name: name, value: ldvalue.CopyArbitraryValue(value), persistent: persistent}
	if i, ok := st.index[name]; ok {
		st.entries[i] = entry
		return
	}
	st.index[name] = len(st.entries)
	st.entries = append(st.entries, entry)
}

func (st *infoStore) clear(clearPersistent bool) {
	if clearPersistent {
		st.entries = nil
		st.index = make(map[string]int)
		return
	}
	kept := st.entries[:0]
	for _, e := range st.entries {
		if e.persistent {
			kept = append(kept, e)
		}
	}
	st.entries = kept
	st.index = make(map[string]int)
	for i, e := range st.entries {
		st.index[e.name] = i
	}
}

func (st *infoStore) empty() bool {
	return len(st.entries) == 0
}

func (st *infoStore) render(w io.Writer) {
	for _, e := range st.entries {
		fmt.Fprintf(w, "Name: %s        value: %s\n", e.name, renderValue(e.value))
	}
}

// renderValue prints strings bare and everything else as its JSON form, so a
// value reads the same no matter what Go type the test attached.
func renderValue(v ldvalue.Value) string {
	if v.Type() == ldvalue.StringType {
		return v.StringValue()
	}
	return v.JSONString()
}

// Info attaches named diagnostic context to be printed with the next failure
// report. It is discarded as soon as any assertion passes. Attaching a value
// under an existing name replaces it.
func (s *Session) Info(name string, value interface{}) {
	s.info.set(name, value, false)
}

// PersistentInfo is like Info but the entry survives passing assertions; it
// is only discarded when the test case ends or ResetInfo(true) is called.
func (s *Session) PersistentInfo(name string, value interface{}) {
	s.info.set(name, value, true)
}

// ResetInfo discards attached diagnostic context. Persistent entries are kept
// unless clearPersistent is true.
func (s *Session) ResetInfo(clearPersistent bool) {
	s.info.clear(clearPersistent)
}

// printInfo is the failure-path renderer: it prints every stored entry in
// insertion order and then performs a non-persistent clear.
func (s *Session) printInfo() {
	if s.info.empty() {
		return
	}
	fmt.Fprintln(s.out, "Printing information")
	s.info.render(s.out)
	s.info.clear(false)
}
