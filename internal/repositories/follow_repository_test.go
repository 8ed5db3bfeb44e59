package repositories

import "testing"

func TestCreateFollowIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresFollowRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	created, err := repo.CreateFollow(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("first follow: %v", err)
	}
	if !created {
		t.Fatalf("expected first follow to insert the edge")
	}

	created, err = repo.CreateFollow(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("duplicate follow: %v", err)
	}
	if created {
		t.Fatalf("expected duplicate follow to be suppressed")
	}

	following, err := repo.IsFollowing(alice.ID, bob.ID)
	if err != nil || !following {
		t.Fatalf("expected alice to follow bob, got following=%v err=%v", following, err)
	}

	// The edge is directed
	following, err = repo.IsFollowing(bob.ID, alice.ID)
	if err != nil || following {
		t.Fatalf("expected bob not to follow alice, got following=%v err=%v", following, err)
	}
}

func TestDeleteFollow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresFollowRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	if _, err := repo.CreateFollow(alice.ID, bob.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}

	removed, err := repo.DeleteFollow(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("unfollow: %v", err)
	}
	if !removed {
		t.Fatalf("expected edge to be removed")
	}

	removed, err = repo.DeleteFollow(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("second unfollow must not error: %v", err)
	}
	if removed {
		t.Fatalf("expected no edge on second unfollow")
	}
}

func TestFollowerAndFollowingListings(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresFollowRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	repo.CreateFollow(alice.ID, bob.ID)
	repo.CreateFollow(carol.ID, bob.ID)
	repo.CreateFollow(bob.ID, alice.ID)

	followers, total, err := repo.GetFollowers(bob.ID, 0, 10)
	if err != nil {
		t.Fatalf("followers: %v", err)
	}
	if total != 2 || len(followers) != 2 {
		t.Fatalf("expected 2 followers of bob, got total=%d len=%d", total, len(followers))
	}

	following, total, err := repo.GetFollowing(bob.ID, 0, 10)
	if err != nil {
		t.Fatalf("following: %v", err)
	}
	if total != 1 || len(following) != 1 || following[0].Username != "alice" {
		t.Fatalf("expected bob to follow only alice, got %+v", following)
	}

	count, err := repo.GetFollowersCount(bob.ID)
	if err != nil || count != 2 {
		t.Fatalf("expected followers count 2, got %d (err=%v)", count, err)
	}

	ids, err := repo.GetFollowingIDs(alice.ID)
	if err != nil || len(ids) != 1 || ids[0] != bob.ID {
		t.Fatalf("expected alice following ids [%d], got %v (err=%v)", bob.ID, ids, err)
	}
}

func TestFollowerListingPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresFollowRepository(db)
	bob := createTestUser(t, db, "bob")

	for _, name := range []string{"u1", "u2", "u3"} {
		u := createTestUser(t, db, name)
		repo.CreateFollow(u.ID, bob.ID)
	}

	page1, total, err := repo.GetFollowers(bob.ID, 0, 2)
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if total != 3 || len(page1) != 2 {
		t.Fatalf("expected total=3 page len=2, got total=%d len=%d", total, len(page1))
	}

	page2, _, err := repo.GetFollowers(bob.ID, 2, 2)
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}
	if len(page2) != 1 {
		t.Fatalf("expected page 2 len=1, got %d", len(page2))
	}
}
