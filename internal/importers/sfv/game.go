package sfv

import "github.com/rcashie/fb-web-import/internal/core/domain"

func gameProposal(gameID string) domain.Proposal {
	return domain.Proposal{
		Target:   gameID,
		ImportAs: Name,
		Document: domain.Document{
			Type:  domain.DocumentTypeGame,
			Title: "Street Fighter V",
			Names: []string{},
			Media: emptyMedia,
			Attributes: []domain.Attribute{
				{Title: "Publisher", Value: "Capcom", Sentiment: domain.SentimentNeutral},
				{Title: "Original Release", Value: "February 16, 2016", Sentiment: domain.SentimentNeutral},
			},
		},
	}
}
