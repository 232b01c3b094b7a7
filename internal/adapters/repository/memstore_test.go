package repository_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/okian/mergington/internal/adapters/repository"
	"github.com/okian/mergington/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemoryStore_List(t *testing.T) {
	Convey("Given a store with the seed catalog", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore()

		Convey("When listing activities", func() {
			catalog, err := store.List(ctx)

			Convey("Then every seeded activity should be present with its roster", func() {
				So(err, ShouldBeNil)
				So(len(catalog), ShouldEqual, 9)
				So(store.Count(ctx), ShouldEqual, 9)
				for _, seed := range model.SeedActivities() {
					got, ok := catalog[seed.Name]
					So(ok, ShouldBeTrue)
					So(got.Participants, ShouldResemble, seed.Participants)
					So(got.MaxParticipants, ShouldEqual, seed.MaxParticipants)
				}
			})
		})

		Convey("When mutating a listed snapshot", func() {
			catalog, _ := store.List(ctx)
			chess := catalog["Chess Club"]
			chess.Participants[0] = "intruder@mergington.edu"

			Convey("Then the store should be unaffected", func() {
				again, err := store.Get(ctx, "Chess Club")
				So(err, ShouldBeNil)
				So(again.Participants[0], ShouldEqual, "michael@mergington.edu")
			})
		})
	})
}

func TestMemoryStore_AddParticipant(t *testing.T) {
	Convey("Given a fresh store", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore()

		Convey("When adding a new participant", func() {
			a, err := store.AddParticipant(ctx, "Chess Club", "tester@mergington.edu")

			Convey("Then it should be appended to the roster", func() {
				So(err, ShouldBeNil)
				So(a.Participants, ShouldResemble, []string{
					"michael@mergington.edu", "daniel@mergington.edu", "tester@mergington.edu",
				})
			})

			Convey("And adding the same email again should fail", func() {
				_, err := store.AddParticipant(ctx, "Chess Club", "tester@mergington.edu")
				So(errors.Is(err, repository.ErrAlreadySignedUp), ShouldBeTrue)

				got, _ := store.Get(ctx, "Chess Club")
				So(len(got.Participants), ShouldEqual, 3)
			})
		})

		Convey("When adding to an unknown activity", func() {
			_, err := store.AddParticipant(ctx, "Nonexistent", "foo@bar.com")

			Convey("Then it should report not found", func() {
				So(errors.Is(err, repository.ErrActivityNotFound), ShouldBeTrue)
			})
		})

		Convey("When the roster is over capacity but enforcement is off", func() {
			store := repository.NewMemoryStore(repository.WithActivities([]model.Activity{
				{Name: "Tiny", MaxParticipants: 1, Participants: []string{"a@x.com"}},
			}))
			_, err := store.AddParticipant(ctx, "Tiny", "b@x.com")

			Convey("Then the signup should still be accepted", func() {
				So(err, ShouldBeNil)
			})
		})

		Convey("When the roster is full and enforcement is on", func() {
			store := repository.NewMemoryStore(
				repository.WithActivities([]model.Activity{
					{Name: "Tiny", MaxParticipants: 1, Participants: []string{"a@x.com"}},
				}),
				repository.WithCapacityEnforcement(true),
			)
			_, err := store.AddParticipant(ctx, "Tiny", "b@x.com")

			Convey("Then the signup should be rejected", func() {
				So(errors.Is(err, repository.ErrActivityFull), ShouldBeTrue)
			})

			Convey("And a duplicate should still report already signed up", func() {
				_, err := store.AddParticipant(ctx, "Tiny", "a@x.com")
				So(errors.Is(err, repository.ErrAlreadySignedUp), ShouldBeTrue)
			})
		})
	})
}

func TestMemoryStore_RemoveParticipant(t *testing.T) {
	Convey("Given a fresh store", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore()

		Convey("When removing a present participant", func() {
			a, err := store.RemoveParticipant(ctx, "Chess Club", "michael@mergington.edu")

			Convey("Then they should no longer appear", func() {
				So(err, ShouldBeNil)
				So(a.Participants, ShouldResemble, []string{"daniel@mergington.edu"})
			})

			Convey("And removing them again should fail", func() {
				_, err := store.RemoveParticipant(ctx, "Chess Club", "michael@mergington.edu")
				So(errors.Is(err, repository.ErrNotSignedUp), ShouldBeTrue)
			})
		})

		Convey("When removing from an unknown activity", func() {
			_, err := store.RemoveParticipant(ctx, "Nope", "foo@x.com")

			Convey("Then it should report not found", func() {
				So(errors.Is(err, repository.ErrActivityNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestMemoryStore_Concurrency(t *testing.T) {
	Convey("Given a store and many concurrent signups", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore()
		const n = 50

		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				email := fmt.Sprintf("student%d@mergington.edu", i%10)
				_, _ = store.AddParticipant(ctx, "Gym Class", email)
			}(i)
		}
		wg.Wait()

		Convey("Then the roster should hold each distinct email once", func() {
			a, err := store.Get(ctx, "Gym Class")
			So(err, ShouldBeNil)
			So(len(a.Participants), ShouldEqual, 2+10)

			seen := map[string]bool{}
			for _, e := range a.Participants {
				So(seen[e], ShouldBeFalse)
				seen[e] = true
			}
		})
	})
}
