package handlers

import (
	"strconv"
	"strings"

	"edu-turkish-backend/internal/catalog"
	"edu-turkish-backend/internal/locale"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
)

// requestLocale resolves ?lang, then ?locale, then Accept-Language.
func requestLocale(c *fiber.Ctx) locale.Resolved {
	if raw := c.Query("lang"); raw != "" {
		return locale.Resolve(raw)
	}
	if raw := c.Query("locale"); raw != "" {
		return locale.Resolve(raw)
	}
	if loc, ok := acceptLanguage(c.Get(fiber.HeaderAcceptLanguage)); ok {
		return loc
	}
	return locale.Resolve("")
}

// acceptLanguage picks the supported entry with the highest weight, earlier
// entries winning ties. Codes unknown to x/text such as "kz" keep weight 1
// so they still reach the alias table.
func acceptLanguage(header string) (locale.Resolved, bool) {
	var (
		best  locale.Resolved
		bestQ float32 = -1
		found bool
	)
	for _, entry := range strings.Split(header, ",") {
		q := float32(1)
		if _, weights, err := language.ParseAcceptLanguage(entry); err == nil && len(weights) == 1 {
			q = weights[0]
		}

		code := entry
		if idx := strings.IndexByte(code, ';'); idx != -1 {
			code = code[:idx]
		}
		loc, ok := locale.Lookup(code)
		if !ok || q <= 0 || q <= bestQ {
			continue
		}
		best, bestQ, found = loc, q, true
	}
	return best, found
}

func queryInt(c *fiber.Ctx, key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(c.Query(key)))
	if err != nil {
		return 0
	}
	return n
}

// queryFloat returns nil for a missing or unparsable value.
func queryFloat(c *fiber.Ctx, key string) *float64 {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// queryUint returns nil unless the value is a positive integer.
func queryUint(c *fiber.Ctx, key string) *uint {
	v, err := strconv.ParseUint(strings.TrimSpace(c.Query(key)), 10, 32)
	if err != nil || v == 0 {
		return nil
	}
	id := uint(v)
	return &id
}

// queryList collects key=a,b and repeated key=a&key=b (also key[]=a).
func queryList(c *fiber.Ctx, key string) []string {
	args := c.Context().QueryArgs()

	var out []string
	for _, k := range []string{key, key + "[]"} {
		for _, raw := range args.PeekMulti(k) {
			for _, part := range strings.Split(string(raw), ",") {
				if part = strings.TrimSpace(part); part != "" {
					out = append(out, part)
				}
			}
		}
	}
	return out
}

func parseFilter(c *fiber.Ctx) catalog.Filter {
	return catalog.Filter{
		Q:        c.Query("q"),
		City:     c.Query("city"),
		Type:     c.Query("type"),
		Level:    c.Query("level"),
		Langs:    queryList(c, "langs"),
		PriceMin: queryFloat(c, "price_min"),
		PriceMax: queryFloat(c, "price_max"),
		Sort:     c.Query("sort"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	}
}

func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
