package report

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"phonereport/internal/directory"
)

// Directory is the subset of the directory client the report builder needs.
type Directory interface {
	ListUsers(ctx context.Context) ([]directory.User, error)
	ListRooms(ctx context.Context) ([]directory.Room, error)
	ListResourceAccounts(ctx context.Context) ([]directory.ResourceAccount, error)
}

// Options selects which source categories go into the report.
type Options struct {
	Users            bool
	MeetingRooms     bool
	ResourceAccounts bool
}

// AllCategories enables every source category.
func AllCategories() Options {
	return Options{Users: true, MeetingRooms: true, ResourceAccounts: true}
}

// category is one source pass in the pipeline. Categories run in a fixed
// order; a category with supersede set replaces any earlier record sharing
// the same identity key. Rooms and resource accounts are backed by an
// underlying user object, so without superseding the same phone number would
// appear twice under two different types.
type category struct {
	name      string
	enabled   bool
	supersede bool
	fetch     func(ctx context.Context) ([]AssignmentRecord, error)
}

// Build fetches every enabled category in order (users, then meeting rooms,
// then resource accounts), merges the normalized records into one collection
// and returns it sorted ascending by raw LineURI. A category that errors is
// logged and treated as empty; per-item problems never fail the build.
func Build(ctx context.Context, dir Directory, opts Options, log *zap.Logger) []AssignmentRecord {
	categories := []category{
		{
			name:    "users",
			enabled: opts.Users,
			fetch: func(ctx context.Context) ([]AssignmentRecord, error) {
				users, err := dir.ListUsers(ctx)
				if err != nil {
					return nil, err
				}
				var recs []AssignmentRecord
				for _, u := range users {
					if u.LineURI == "" {
						continue
					}
					recs = append(recs, FromUser(u))
				}
				return recs, nil
			},
		},
		{
			name:      "meetingRooms",
			enabled:   opts.MeetingRooms,
			supersede: true,
			fetch: func(ctx context.Context) ([]AssignmentRecord, error) {
				rooms, err := dir.ListRooms(ctx)
				if err != nil {
					return nil, err
				}
				var recs []AssignmentRecord
				for _, r := range rooms {
					if r.LineURI == "" {
						continue
					}
					recs = append(recs, FromRoom(r))
				}
				return recs, nil
			},
		},
		{
			name:      "resourceAccounts",
			enabled:   opts.ResourceAccounts,
			supersede: true,
			fetch: func(ctx context.Context) ([]AssignmentRecord, error) {
				accounts, err := dir.ListResourceAccounts(ctx)
				if err != nil {
					return nil, err
				}
				var recs []AssignmentRecord
				for _, ra := range accounts {
					if ra.PhoneNumber == "" {
						continue
					}
					recs = append(recs, FromResourceAccount(ra))
				}
				return recs, nil
			},
		},
	}

	var agg aggregator
	for _, cat := range categories {
		if !cat.enabled {
			continue
		}
		recs, err := cat.fetch(ctx)
		if err != nil {
			log.Warn("category fetch failed, treating as empty",
				zap.String("category", cat.name), zap.Error(err))
			continue
		}
		log.Debug("category fetched",
			zap.String("category", cat.name), zap.Int("records", len(recs)))
		agg.merge(recs, cat.supersede)
	}

	agg.sortByLineURI()
	return agg.records
}

// aggregator accumulates assignment records across category passes.
type aggregator struct {
	records []AssignmentRecord
}

// merge appends recs to the collection. With supersede set, each incoming
// record first removes every existing record with the same
// UserPrincipalName. Records within a single non-superseding category are
// never deduplicated against each other.
func (a *aggregator) merge(recs []AssignmentRecord, supersede bool) {
	for _, rec := range recs {
		if supersede {
			a.remove(rec.UserPrincipalName)
		}
		a.records = append(a.records, rec)
	}
}

func (a *aggregator) remove(userPrincipalName string) {
	kept := a.records[:0]
	for _, rec := range a.records {
		if rec.UserPrincipalName != userPrincipalName {
			kept = append(kept, rec)
		}
	}
	a.records = kept
}

// sortByLineURI orders the collection ascending by the raw identifier
// string. Plain string comparison: empty LineURIs sort first.
func (a *aggregator) sortByLineURI() {
	sort.SliceStable(a.records, func(i, j int) bool {
		return a.records[i].LineURI < a.records[j].LineURI
	})
}
