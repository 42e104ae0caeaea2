package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/prepitus/college-chances-api/internal/models"
)

// defaultCatalog is the reference data the wizard searches against. Admit
// rates are display strings; GPA averages and SAT ranges feed the
// classifier.
var defaultCatalog = []models.College{
	{Name: "Harvard University", AdmitRate: "3%", GPAAvg: "4.0", SATRange: "1490 - 1580"},
	{Name: "Stanford University", AdmitRate: "4%", GPAAvg: "3.9", SATRange: "1470 - 1570"},
	{Name: "Massachusetts Institute of Technology", AdmitRate: "4%", GPAAvg: "4.0", SATRange: "1510 - 1580"},
	{Name: "Princeton University", AdmitRate: "4%", GPAAvg: "3.9", SATRange: "1460 - 1570"},
	{Name: "Yale University", AdmitRate: "5%", GPAAvg: "4.0", SATRange: "1470 - 1570"},
	{Name: "Columbia University", AdmitRate: "4%", GPAAvg: "3.9", SATRange: "1470 - 1570"},
	{Name: "Duke University", AdmitRate: "6%", GPAAvg: "3.9", SATRange: "1470 - 1570"},
	{Name: "University of Pennsylvania", AdmitRate: "6%", GPAAvg: "3.9", SATRange: "1460 - 1570"},
	{Name: "Northwestern University", AdmitRate: "7%", GPAAvg: "3.9", SATRange: "1430 - 1550"},
	{Name: "Cornell University", AdmitRate: "7%", GPAAvg: "3.8", SATRange: "1420 - 1540"},
	{Name: "University of California, Berkeley", AdmitRate: "11%", GPAAvg: "3.9", SATRange: "1310 - 1530"},
	{Name: "University of California, Los Angeles", AdmitRate: "9%", GPAAvg: "3.9", SATRange: "1290 - 1510"},
	{Name: "University of Michigan", AdmitRate: "18%", GPAAvg: "3.9", SATRange: "1350 - 1530"},
	{Name: "New York University", AdmitRate: "12%", GPAAvg: "3.7", SATRange: "1390 - 1540"},
	{Name: "Boston University", AdmitRate: "14%", GPAAvg: "3.7", SATRange: "1340 - 1500"},
	{Name: "University of Texas at Austin", AdmitRate: "31%", GPAAvg: "3.7", SATRange: "1230 - 1480"},
	{Name: "Penn State University", AdmitRate: "55%", GPAAvg: "3.6", SATRange: "1160 - 1360"},
	{Name: "Arizona State University", AdmitRate: "90%", GPAAvg: "3.5", SATRange: "1100 - 1320"},
}

const catalogCachePrefix = "catalog:college:"

// CatalogRepository serves the static college reference data. When a Redis
// client is supplied, by-name lookups go through the cache first; misses
// and cache failures fall back to the in-memory table.
type CatalogRepository struct {
	colleges []models.College
	byName   map[string]models.College
	cache    *redis.Client
	cacheTTL time.Duration
}

// NewCatalogRepository builds the repository. cache may be nil.
func NewCatalogRepository(cache *redis.Client, cacheTTL time.Duration) *CatalogRepository {
	byName := make(map[string]models.College, len(defaultCatalog))
	for _, c := range defaultCatalog {
		byName[c.Name] = c
	}
	return &CatalogRepository{
		colleges: defaultCatalog,
		byName:   byName,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// List returns the full catalog.
func (r *CatalogRepository) List(ctx context.Context) []models.College {
	out := make([]models.College, len(r.colleges))
	copy(out, r.colleges)
	return out
}

// FindByName resolves a college by its exact name. The second return value
// is false when the name is unknown.
func (r *CatalogRepository) FindByName(ctx context.Context, name string) (models.College, bool) {
	if r.cache != nil {
		if raw, err := r.cache.Get(ctx, catalogCachePrefix+name).Result(); err == nil {
			var college models.College
			if err := json.Unmarshal([]byte(raw), &college); err == nil {
				return college, true
			}
		}
	}

	college, ok := r.byName[name]
	if !ok {
		return models.College{}, false
	}

	if r.cache != nil {
		if raw, err := json.Marshal(college); err == nil {
			r.cache.Set(ctx, catalogCachePrefix+name, raw, r.cacheTTL)
		}
	}
	return college, true
}
