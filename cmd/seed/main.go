package main

import (
	"context"
	"errors"
	"log"
	"sysdesignlab/internal/app/service"
	"sysdesignlab/internal/common"
	"sysdesignlab/internal/domain/model"
	"sysdesignlab/internal/domain/repository"
	"sysdesignlab/internal/platform/config"
	"sysdesignlab/internal/platform/database"
)

var sampleProblems = []service.CreateProblemRequest{
	{
		Title:       "Design URL Shortener",
		Difficulty:  model.DifficultyEasy,
		Description: "Design a URL shortening service like bit.ly or TinyURL that converts long URLs into short, manageable links.",
		FunctionalRequirements: []string{
			"Generate short URL from long URL",
			"Redirect short URL to original URL",
			"Custom short URL aliases (optional)",
			"URL expiration (optional)",
		},
		NonFunctionalRequirements: []string{
			"Low latency for redirects",
			"High availability",
			"Handle 1000 requests per second",
		},
		Scale: model.ProblemScale{Users: "1 million users", Requests: "1000 req/sec", Data: "100 million URLs"},
		IsPro: false,
	},
	{
		Title:       "Design Instagram",
		Difficulty:  model.DifficultyMedium,
		Description: "Design a photo-sharing social media platform like Instagram with feed, stories, and messaging.",
		FunctionalRequirements: []string{
			"Upload and share photos/videos",
			"News feed with posts from followed users",
			"Like, comment, share functionality",
			"User profiles and followers",
			"Direct messaging",
			"Stories (24-hour expiry)",
		},
		NonFunctionalRequirements: []string{
			"Handle millions of daily active users",
			"Low latency for feed and uploads",
			"High consistency for user data",
			"Eventually consistent for likes/comments",
		},
		Scale: model.ProblemScale{Users: "500 million users", Requests: "100K req/sec", Data: "50 billion photos"},
		IsPro: false,
	},
	{
		Title:       "Design Netflix",
		Difficulty:  model.DifficultyHard,
		Description: "Design a video streaming platform like Netflix that can handle millions of concurrent users watching different content.",
		FunctionalRequirements: []string{
			"Video streaming with adaptive bitrate",
			"Content recommendation engine",
			"User profiles and watch history",
			"Content search and discovery",
			"Download for offline viewing",
			"Multiple device support",
		},
		NonFunctionalRequirements: []string{
			"Handle millions of concurrent streams",
			"Low buffering and latency",
			"Global content delivery",
			"High availability (99.99% uptime)",
			"Content security and DRM",
		},
		Scale: model.ProblemScale{Users: "200 million subscribers", Requests: "1 million concurrent streams", Data: "100K hours of content"},
		IsPro: true,
	},
	{
		Title:       "Design Twitter",
		Difficulty:  model.DifficultyMedium,
		Description: "Design a microblogging platform like Twitter (X) where users can post short messages and follow others.",
		FunctionalRequirements: []string{
			"Post tweets (280 characters)",
			"Follow/unfollow users",
			"Timeline feed (home and user)",
			"Like, retweet, reply",
			"Trending topics",
			"Notifications",
		},
		NonFunctionalRequirements: []string{
			"Real-time feed updates",
			"Handle viral tweets (millions of views)",
			"Low latency for timeline",
			"Eventually consistent for likes/retweets",
		},
		Scale: model.ProblemScale{Users: "300 million users", Requests: "10K tweets per second", Data: "500 billion tweets"},
		IsPro: false,
	},
	{
		Title:       "Design Uber",
		Difficulty:  model.DifficultyHard,
		Description: "Design a ride-sharing platform like Uber that connects riders with drivers in real-time.",
		FunctionalRequirements: []string{
			"Real-time driver location tracking",
			"Ride matching algorithm",
			"Fare calculation",
			"Payment processing",
			"Rating system",
			"Trip history",
			"Surge pricing",
		},
		NonFunctionalRequirements: []string{
			"Real-time GPS updates",
			"Low latency for matching",
			"High availability",
			"Accurate ETA calculations",
			"Handle peak traffic times",
		},
		Scale: model.ProblemScale{Users: "100 million users", Requests: "50K concurrent rides", Data: "10 billion trips"},
		IsPro: true,
	},
	{
		Title:       "Design Dropbox",
		Difficulty:  model.DifficultyMedium,
		Description: "Design a file storage and synchronization service like Dropbox that allows users to store and share files across devices.",
		FunctionalRequirements: []string{
			"File upload and download",
			"File synchronization across devices",
			"File sharing (public/private)",
			"Version history",
			"Folder organization",
			"Collaboration features",
		},
		NonFunctionalRequirements: []string{
			"Fast sync across devices",
			"Handle large files (GBs)",
			"Data consistency",
			"High availability",
		},
		Scale: model.ProblemScale{Users: "700 million users", Requests: "10K uploads/sec", Data: "exabytes of storage"},
		IsPro: false,
	},
}

func main() {
	config.Load()
	database.Connect()
	defer database.Close()

	problemService := service.NewProblemService(repository.NewPgProblemRepository(database.DB))

	ctx := context.Background()
	seeded := 0
	for _, req := range sampleProblems {
		if _, err := problemService.CreateProblem(ctx, req); err != nil {
			if errors.Is(err, common.ErrConflict) {
				log.Printf("Skipping %q, already seeded", req.Title)
				continue
			}
			log.Fatalf("Failed to seed problem %q: %v", req.Title, err)
		}
		seeded++
	}
	log.Printf("Seeded %d problems.", seeded)
}
