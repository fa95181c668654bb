package testutils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/KirkDiggler/custom-lobby/internal/entities/lol"
)

// TestVersions is the version list served by the fake Data Dragon, newest first
var TestVersions = []string{"14.2.1", "14.1.1", "13.24.1"}

// TestChampions is a small catalog with Data Dragon's real tags, in document order
func TestChampions() []lol.Champion {
	return []lol.Champion{
		{ID: "Aatrox", Key: "266", Name: "Aatrox", Title: "the Darkin Blade", Tags: []string{"Fighter", "Tank"}},
		{ID: "Ahri", Key: "103", Name: "Ahri", Title: "the Nine-Tailed Fox", Tags: []string{"Mage", "Assassin"}},
		{ID: "Annie", Key: "1", Name: "Annie", Title: "the Dark Child", Tags: []string{"Mage"}},
		{ID: "Ashe", Key: "22", Name: "Ashe", Title: "the Frost Archer", Tags: []string{"Marksman", "Support"}},
		{ID: "Braum", Key: "201", Name: "Braum", Title: "the Heart of the Freljord", Tags: []string{"Support", "Tank"}},
		{ID: "Jinx", Key: "222", Name: "Jinx", Title: "the Loose Cannon", Tags: []string{"Marksman"}},
		{ID: "Leona", Key: "89", Name: "Leona", Title: "the Radiant Dawn", Tags: []string{"Tank", "Support"}},
		{ID: "Lux", Key: "99", Name: "Lux", Title: "the Lady of Luminosity", Tags: []string{"Mage", "Support"}},
		{ID: "Malphite", Key: "54", Name: "Malphite", Title: "Shard of the Monolith", Tags: []string{"Tank", "Fighter"}},
		{ID: "MonkeyKing", Key: "62", Name: "Wukong", Title: "the Monkey King", Tags: []string{"Fighter", "Tank"}},
		{ID: "Ornn", Key: "516", Name: "Ornn", Title: "The Fire below the Mountain", Tags: []string{"Tank"}},
		{ID: "Taric", Key: "44", Name: "Taric", Title: "the Shield of Valoran", Tags: []string{"Support", "Fighter"}},
		{ID: "Zed", Key: "238", Name: "Zed", Title: "the Master of Shadows", Tags: []string{"Assassin"}},
	}
}

// ChampionDocument renders champions as a champion.json body, preserving order
func ChampionDocument(version string, champions []lol.Champion) []byte {
	var buf bytes.Buffer
	buf.WriteString(`{"type":"champion","format":"standAloneComplex","version":`)
	writeJSON(&buf, version)
	buf.WriteString(`,"data":{`)
	for i, c := range champions {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSON(&buf, c.ID)
		buf.WriteByte(':')
		writeJSON(&buf, map[string]any{
			"version": version,
			"id":      c.ID,
			"key":     c.Key,
			"name":    c.Name,
			"title":   c.Title,
			"tags":    c.Tags,
		})
	}
	buf.WriteString(`}}`)
	return buf.Bytes()
}

func writeJSON(buf *bytes.Buffer, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	buf.Write(b)
}

// DataDragonServer is an httptest server speaking the Data Dragon layout
type DataDragonServer struct {
	*httptest.Server

	mu   sync.Mutex
	hits map[string]int
}

// NewDataDragonServer serves TestVersions at /api/versions.json and
// champions at /cdn/<version>/data/<lang>/champion.json for any listed
// version. It is closed when the test ends.
func NewDataDragonServer(t *testing.T, champions []lol.Champion) *DataDragonServer {
	t.Helper()

	s := &DataDragonServer{hits: make(map[string]int)}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.hits[r.URL.Path]++
		s.mu.Unlock()

		if r.URL.Path == "/api/versions.json" {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(TestVersions)
			return
		}

		// cdn / <version> / data / <lang> / champion.json
		parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/"), "/")
		if len(parts) == 5 && parts[0] == "cdn" && parts[2] == "data" && parts[4] == "champion.json" {
			for _, v := range TestVersions {
				if v == parts[1] {
					w.Header().Set("Content-Type", "application/json")
					_, _ = w.Write(ChampionDocument(v, champions))
					return
				}
			}
		}

		http.NotFound(w, r)
	}))
	t.Cleanup(s.Close)

	return s
}

// BaseURL is the server URL with a trailing slash, as Data Dragon publishes it
func (s *DataDragonServer) BaseURL() string {
	return s.Server.URL + "/"
}

// Hits returns how many requests reached path
func (s *DataDragonServer) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}
