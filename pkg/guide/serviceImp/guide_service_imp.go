package serviceImp

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"mycolog/entities"
	"mycolog/pkg/guide/repository"
)

type Svc struct{ r repository.GuideRepository }

func New(r repository.GuideRepository) *Svc { return &Svc{r: r} }

func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = 1000
	}
	parts := []string{}
	cur := strings.Builder{}
	count := 0
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && r == '\n' {
			parts = append(parts, cur.String())
			cur.Reset()
			count = 0
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

func (s *Svc) Ingest(title, tags, text, sourceURL string) (*entities.GuideDocument, int, error) {
	if strings.TrimSpace(text) == "" {
		return nil, 0, errors.New("empty text")
	}
	d := &entities.GuideDocument{Title: title, Tags: tags, SourceURL: sourceURL}
	if err := s.r.CreateDoc(d); err != nil {
		return nil, 0, err
	}
	chs := chunkText(text, 1000)
	rows := make([]entities.GuideChunk, len(chs))
	for i := range chs {
		rows[i] = entities.GuideChunk{DocID: d.DocID, Ord: i, Text: chs[i]}
	}
	if err := s.r.BulkInsertChunks(rows); err != nil {
		return nil, 0, err
	}
	return d, len(rows), nil
}

// IngestURL fetches a page and ingests its title plus paragraph text.
func (s *Svc) IngestURL(url, tags string) (*entities.GuideDocument, int, error) {
	httpc := &http.Client{Timeout: 20 * time.Second}
	resp, err := httpc.Get(url)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = url
	}
	var sb strings.Builder
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if t := strings.TrimSpace(sel.Text()); t != "" {
			sb.WriteString(t)
			sb.WriteString("\n")
		}
	})
	return s.Ingest(title, tags, sb.String(), url)
}

// Result is one scored search hit with its document metadata attached.
type Result struct {
	DocID     uint    `json:"doc_id"`
	Title     string  `json:"title"`
	SourceURL string  `json:"source_url"`
	Snippet   string  `json:"snippet"`
	Score     float64 `json:"score"`
}

// Search ranks chunks by plain term frequency over lowercased text.
func (s *Svc) Search(query string, k int) ([]Result, error) {
	q := strings.TrimSpace(strings.ToLower(query))
	if q == "" || k <= 0 {
		return nil, nil
	}
	terms := strings.Fields(q)

	chunks, err := s.r.AllChunks()
	if err != nil {
		return nil, err
	}
	type scored struct {
		ch    entities.GuideChunk
		score float64
	}
	var hits []scored
	for _, ch := range chunks {
		text := strings.ToLower(ch.Text)
		var sc float64
		for _, t := range terms {
			sc += float64(strings.Count(text, t))
		}
		if sc > 0 {
			hits = append(hits, scored{ch: ch, score: sc})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	if len(hits) > k {
		hits = hits[:k]
	}

	ids := make([]uint, 0, len(hits))
	seen := map[uint]struct{}{}
	for _, h := range hits {
		if _, ok := seen[h.ch.DocID]; !ok {
			seen[h.ch.DocID] = struct{}{}
			ids = append(ids, h.ch.DocID)
		}
	}
	meta, err := s.r.DocsByIDs(ids)
	if err != nil {
		return nil, err
	}

	out := make([]Result, 0, len(hits))
	for _, h := range hits {
		d := meta[h.ch.DocID]
		snippet := h.ch.Text
		if len(snippet) > 300 {
			snippet = snippet[:300]
		}
		out = append(out, Result{
			DocID:     h.ch.DocID,
			Title:     d.Title,
			SourceURL: d.SourceURL,
			Snippet:   snippet,
			Score:     h.score,
		})
	}
	return out, nil
}
