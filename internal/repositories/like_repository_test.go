package repositories

import "testing"

func TestToggleLikeAlternates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresLikeRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	post := createTestPost(t, db, bob.ID, "hello")

	for i := 0; i < 4; i++ {
		liked, err := repo.ToggleLike(alice.ID, post.ID)
		if err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}
		wantLiked := i%2 == 0
		if liked != wantLiked {
			t.Fatalf("toggle %d: expected liked=%v, got %v", i, wantLiked, liked)
		}

		count, err := repo.GetLikesCountByPostID(post.ID)
		if err != nil {
			t.Fatalf("count after toggle %d: %v", i, err)
		}
		var wantCount int64
		if wantLiked {
			wantCount = 1
		}
		if count != wantCount {
			t.Fatalf("toggle %d: expected count=%d, got %d", i, wantCount, count)
		}
	}
}

func TestHasUserLikedPost(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresLikeRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	post := createTestPost(t, db, bob.ID, "hello")

	liked, err := repo.HasUserLikedPost(alice.ID, post.ID)
	if err != nil || liked {
		t.Fatalf("expected no like yet, got liked=%v err=%v", liked, err)
	}

	repo.ToggleLike(alice.ID, post.ID)

	liked, err = repo.HasUserLikedPost(alice.ID, post.ID)
	if err != nil || !liked {
		t.Fatalf("expected like present, got liked=%v err=%v", liked, err)
	}
}

func TestGetLikersByPostID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresLikeRepository(db)
	bob := createTestUser(t, db, "bob")
	post := createTestPost(t, db, bob.ID, "hello")

	alice := createTestUser(t, db, "alice")
	carol := createTestUser(t, db, "carol")
	repo.ToggleLike(alice.ID, post.ID)
	repo.ToggleLike(carol.ID, post.ID)

	users, total, err := repo.GetLikersByPostID(post.ID, 0, 10)
	if err != nil {
		t.Fatalf("likers: %v", err)
	}
	if total != 2 || len(users) != 2 {
		t.Fatalf("expected 2 likers, got total=%d len=%d", total, len(users))
	}
}

func TestBatchLikeLookups(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresLikeRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	p1 := createTestPost(t, db, bob.ID, "one")
	p2 := createTestPost(t, db, bob.ID, "two")
	p3 := createTestPost(t, db, bob.ID, "three")

	repo.ToggleLike(alice.ID, p1.ID)
	repo.ToggleLike(alice.ID, p2.ID)
	repo.ToggleLike(bob.ID, p2.ID)

	counts, err := repo.GetLikeCounts([]uint{p1.ID, p2.ID, p3.ID})
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts[p1.ID] != 1 || counts[p2.ID] != 2 || counts[p3.ID] != 0 {
		t.Fatalf("unexpected counts: %v", counts)
	}

	liked, err := repo.GetLikedPostIDs(alice.ID, []uint{p1.ID, p2.ID, p3.ID})
	if err != nil {
		t.Fatalf("liked set: %v", err)
	}
	if !liked[p1.ID] || !liked[p2.ID] || liked[p3.ID] {
		t.Fatalf("unexpected liked set: %v", liked)
	}

	// Empty input short-circuits
	liked, err = repo.GetLikedPostIDs(alice.ID, nil)
	if err != nil || len(liked) != 0 {
		t.Fatalf("expected empty map for empty input, got %v (err=%v)", liked, err)
	}
}
