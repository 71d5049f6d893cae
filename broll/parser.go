package broll

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dakotahermes/brollbot22/internal/models"
)

// DefaultDecomposeTimeout bounds one decomposition round trip.
const DefaultDecomposeTimeout = 30 * time.Second

// TextGenerator is the outbound boundary to the generative text service.
// Implementations must be safe for concurrent use.
type TextGenerator interface {
	GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Cache memoizes decomposition results keyed by (script, tone, format).
// A hit must be behaviorally identical to a fresh call, latency aside.
type Cache interface {
	Get(key string) ([]models.SceneBeat, bool)
	Set(key string, beats []models.SceneBeat)
}

// NopCache satisfies Cache without storing anything.
type NopCache struct{}

func (NopCache) Get(string) ([]models.SceneBeat, bool) { return nil, false }
func (NopCache) Set(string, []models.SceneBeat)        {}

// Parser decomposes ad scripts into scene beats through one request/response
// cycle with the generative text service. A malformed reply fails the whole
// call; a malformed element within an otherwise valid reply is skipped.
type Parser struct {
	generator TextGenerator
	cache     Cache
	timeout   time.Duration
	group     singleflight.Group
}

func NewParser(generator TextGenerator, cache Cache, timeout time.Duration) *Parser {
	if cache == nil {
		cache = NopCache{}
	}
	if timeout <= 0 {
		timeout = DefaultDecomposeTimeout
	}
	return &Parser{generator: generator, cache: cache, timeout: timeout}
}

// ParseScript returns the ordered scene beats for the given input. An empty
// slice is a valid outcome ("no suitable scenes found"). Hard failures wrap
// ErrUnexpectedFormat or ErrServiceUnavailable and return no beats.
func (p *Parser) ParseScript(ctx context.Context, in *models.ScriptInput) ([]models.SceneBeat, error) {
	key := cacheKey(in)
	if beats, ok := p.cache.Get(key); ok {
		return beats, nil
	}

	// Concurrent requests for the same key share one service invocation.
	v, err, _ := p.group.Do(key, func() (interface{}, error) {
		beats, err := p.decompose(ctx, in)
		if err != nil {
			return nil, err
		}
		p.cache.Set(key, beats)
		return beats, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.SceneBeat), nil
}

func (p *Parser) decompose(ctx context.Context, in *models.ScriptInput) ([]models.SceneBeat, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	systemPrompt := BuildDecompositionPrompt(in.Tone, in.Format)
	userPrompt := fmt.Sprintf(`DIRECT RESPONSE AD SCRIPT: %s
TARGET TONE: %s
AD FORMAT: %s

Create B-roll that maximizes clicks and conversions for social media ads.`,
		in.Script, in.Tone, in.Format)

	reply, err := p.generator.GenerateText(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	jsonStr, ok := extractJSONArray(reply)
	if !ok {
		return nil, fmt.Errorf("%w: no JSON array found in reply", ErrUnexpectedFormat)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(jsonStr), &elements); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedFormat, err)
	}

	beats := make([]models.SceneBeat, 0, len(elements))
	for i, elem := range elements {
		var beat models.SceneBeat
		if err := json.Unmarshal(elem, &beat); err != nil {
			log.Printf("Warning: skipping unreadable beat %d: %v", i, err)
			continue
		}
		if err := beat.Validate(); err != nil {
			log.Printf("Warning: skipping invalid beat %d: %v", i, err)
			continue
		}
		beats = append(beats, beat)
	}
	return beats, nil
}

func cacheKey(in *models.ScriptInput) string {
	return fmt.Sprintf("%s|%s|%s", in.Script, in.Tone, in.Format)
}

// extractJSONArray pulls the outermost JSON array out of a reply that may be
// wrapped in markdown fences or prose.
func extractJSONArray(s string) (string, bool) {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start == -1 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}
