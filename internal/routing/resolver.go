// Package routing assigns classified documents to department folders.
package routing

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/docuflow/docuflow/internal/model"
)

// maxCollisionAttempts bounds the `_<n>` suffix search.
const maxCollisionAttempts = 10000

// DefaultRoutes returns the built-in category to department mapping.
func DefaultRoutes() map[model.Category]model.Route {
	return map[model.Category]model.Route{
		model.CategoryInvoice: {
			Department:  "Accounting",
			Folder:      "accounting",
			Description: "Routed to Accounting department for payment processing",
		},
		model.CategoryResume: {
			Department:  "Human Resources",
			Folder:      "hr",
			Description: "Routed to HR department for candidate review",
		},
		model.CategoryContract: {
			Department:  "Legal",
			Folder:      "legal",
			Description: "Routed to Legal department for review and filing",
		},
		model.CategoryBankStatement: {
			Department:  "Finance",
			Folder:      "finance",
			Description: "Routed to Finance department for reconciliation",
		},
		model.CategoryOther: {
			Department:  "General Office",
			Folder:      "general",
			Description: "Routed to General Office for manual classification",
		},
	}
}

// Resolver routes documents to department folders. The route table is
// swapped atomically on override updates so concurrent routing calls never
// observe a partial table.
type Resolver struct {
	routes map[model.Category]model.Route
	mu     sync.RWMutex
}

// NewResolver creates a resolver with the default route table.
func NewResolver() *Resolver {
	return &Resolver{routes: DefaultRoutes()}
}

// Routes returns a copy of the current route table.
func (r *Resolver) Routes() map[model.Category]model.Route {
	r.mu.RLock()
	defer r.mu.RUnlock()

	routes := make(map[model.Category]model.Route, len(r.routes))
	for c, route := range r.routes {
		routes[c] = route
	}
	return routes
}

// SetRoute overrides the route for a category.
func (r *Resolver) SetRoute(category model.Category, route model.Route) error {
	if !category.Valid() {
		return fmt.Errorf("%w: %q", model.ErrUnknownCategory, category)
	}
	if route.Department == "" || route.Folder == "" {
		return fmt.Errorf("route for %s must have a department and folder", category)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	routes := make(map[model.Category]model.Route, len(r.routes))
	for c, existing := range r.routes {
		routes[c] = existing
	}
	routes[category] = route
	r.routes = routes
	return nil
}

// Route copies the source file into the department folder for category under
// destinationRoot. The source file stays intact so the original upload
// remains addressable. Filename collisions get a `_<n>` suffix; the slot is
// claimed with create-exclusive semantics, safe under concurrent writers.
// Failures are reported in the decision, never raised.
func (r *Resolver) Route(category model.Category, sourcePath, destinationRoot string) model.RoutingDecision {
	route := r.lookup(category)

	decision := model.RoutingDecision{
		Category:     category,
		Department:   route.Department,
		Folder:       route.Folder,
		Description:  route.Description,
		OriginalPath: sourcePath,
	}

	source, err := os.Open(sourcePath)
	if err != nil {
		return failedDecision(decision, fmt.Errorf("source file not accessible: %w", err))
	}
	defer func() { _ = source.Close() }()

	departmentDir := filepath.Join(destinationRoot, route.Folder)
	if err := os.MkdirAll(departmentDir, 0o750); err != nil {
		return failedDecision(decision, fmt.Errorf("failed to create department folder: %w", err))
	}

	destination, destinationPath, err := claimDestination(departmentDir, filepath.Base(sourcePath))
	if err != nil {
		return failedDecision(decision, err)
	}

	if _, err := io.Copy(destination, source); err != nil {
		_ = destination.Close()
		_ = os.Remove(destinationPath)
		return failedDecision(decision, fmt.Errorf("failed to copy document: %w", err))
	}
	if err := destination.Close(); err != nil {
		return failedDecision(decision, fmt.Errorf("failed to finalize copy: %w", err))
	}

	decision.Success = true
	decision.Path = destinationPath
	slog.Info("document routed",
		"category", category,
		"department", route.Department,
		"source", sourcePath,
		"destination", destinationPath)
	return decision
}

// lookup resolves the route for a category, defaulting to Other's entry for
// unknown inputs.
func (r *Resolver) lookup(category model.Category) model.Route {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if route, ok := r.routes[category]; ok {
		return route
	}
	return r.routes[model.CategoryOther]
}

// claimDestination opens the first free destination file with O_EXCL,
// appending `_<n>` before the extension on collision. Re-checking existence
// is not enough under concurrent writers; the exclusive create claims the
// slot atomically.
func claimDestination(dir, filename string) (*os.File, string, error) {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	for n := 0; n < maxCollisionAttempts; n++ {
		name := filename
		if n > 0 {
			name = fmt.Sprintf("%s_%d%s", base, n, ext)
		}
		path := filepath.Join(dir, name)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, "", fmt.Errorf("failed to create destination file: %w", err)
		}
	}
	return nil, "", fmt.Errorf("no free destination filename for %s after %d attempts", filename, maxCollisionAttempts)
}

func failedDecision(decision model.RoutingDecision, err error) model.RoutingDecision {
	slog.Error("routing failed", "source", decision.OriginalPath, "error", err)
	decision.Success = false
	decision.Department = "Error"
	decision.Folder = "error"
	decision.Path = ""
	decision.Err = err.Error()
	decision.Description = fmt.Sprintf("Routing failed: %v", err)
	return decision
}
