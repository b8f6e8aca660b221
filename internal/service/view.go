package service

import (
	"github.com/forumhub-dev/forumhub/internal/api"
	"github.com/forumhub-dev/forumhub/internal/domain"
)

// Read-model assemblers. They take a topic with author/course/replies already
// resolved and produce the flattened views, so the write path stays testable
// on its own.

func userView(u domain.User) api.UserSummary {
	return api.UserSummary{Id: u.Id, Name: u.Name, Login: u.Login}
}

func courseView(c domain.Course) api.CourseSummary {
	return api.CourseSummary{Id: c.Id, Name: c.Name, Category: c.Category}
}

func replyView(r domain.Reply) api.ReplyView {
	return api.ReplyView{
		Id:        r.Id,
		Message:   r.Message,
		CreatedAt: r.CreatedAt,
		Solution:  r.Solution,
		AuthorId:  r.AuthorId,
		TopicId:   r.TopicId,
	}
}

func SummaryView(t domain.Topic) api.TopicSummary {
	return api.TopicSummary{
		Id:      t.Id,
		Title:   t.Title,
		Message: t.Message,
		Author:  userView(t.Author),
		Course:  courseView(t.Course),
	}
}

func AdminSummaryView(t domain.Topic) api.AdminTopicSummary {
	return api.AdminTopicSummary{TopicSummary: SummaryView(t), Status: t.Status}
}

func DetailView(t domain.Topic) api.TopicDetail {
	replies := make([]api.ReplyView, len(t.Replies))
	for i, r := range t.Replies {
		replies[i] = replyView(r)
	}
	return api.TopicDetail{
		Id:      t.Id,
		Title:   t.Title,
		Message: t.Message,
		Author:  userView(t.Author),
		Course:  courseView(t.Course),
		Replies: replies,
		Status:  t.Status,
	}
}
