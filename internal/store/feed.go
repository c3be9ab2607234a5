package store

// Posts returns the feed, newest first (new posts are prepended).
func (s *Store) Posts() []Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Post, len(s.state.Posts))
	for i, post := range s.state.Posts {
		post.Likes = append([]string(nil), post.Likes...)
		post.Comments = append([]Comment(nil), post.Comments...)
		out[i] = post
	}
	return out
}

func (s *Store) PostByID(id string) (Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, post := range s.state.Posts {
		if post.ID == id {
			post.Likes = append([]string(nil), post.Likes...)
			post.Comments = append([]Comment(nil), post.Comments...)
			return post, true
		}
	}
	return Post{}, false
}

func (s *Store) AddPost(post Post) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	post.ID = s.nextIDLocked(prefixPost)
	post.Likes = []string{}
	post.Comments = []Comment{}
	post.CreatedAt = s.now()
	if post.Type == "" {
		post.Type = PostTypeText
	}
	s.state.Posts = append([]Post{post}, s.state.Posts...)
	s.pushToastLocked("Post published", ToastSuccess)
	s.persistLocked()
	return post.ID
}

// LikePost toggles userID's membership in the post's liker set. Calling it an
// even number of times with the same pair restores the original set.
func (s *Store) LikePost(postID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Posts {
		if s.state.Posts[i].ID != postID {
			continue
		}
		post := &s.state.Posts[i]
		for j, liker := range post.Likes {
			if liker == userID {
				post.Likes = append(post.Likes[:j], post.Likes[j+1:]...)
				s.persistLocked()
				return nil
			}
		}
		post.Likes = append(post.Likes, userID)
		s.persistLocked()
		return nil
	}
	return ErrNotFound
}

// AddComment appends to the post's ordered comment list with a store-assigned
// id and timestamp.
func (s *Store) AddComment(postID string, comment Comment) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Posts {
		if s.state.Posts[i].ID != postID {
			continue
		}
		comment.ID = s.nextIDLocked(prefixComment)
		comment.Timestamp = s.now()
		s.state.Posts[i].Comments = append(s.state.Posts[i].Comments, comment)
		s.persistLocked()
		return comment.ID, nil
	}
	return "", ErrNotFound
}

func (s *Store) DeletePost(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Posts {
		if s.state.Posts[i].ID == id {
			s.state.Posts = append(s.state.Posts[:i], s.state.Posts[i+1:]...)
			s.pushToastLocked("Post deleted", ToastSuccess)
			s.persistLocked()
			return nil
		}
	}
	return ErrNotFound
}
