package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var cmdPost = &cli.Command{
	Name:  "post",
	Usage: "sub-commands for posts",
	Subcommands: []*cli.Command{
		&cli.Command{
			Name:      "create",
			ArgsUsage: `<text>`,
			Action:    runPostCreate,
			Flags: []cli.Flag{
				&cli.StringSliceFlag{
					Name:  "image",
					Usage: "image file to upload and attach (repeatable)",
				},
			},
		},
		&cli.Command{
			Name:      "show",
			ArgsUsage: `<post-id>`,
			Usage:     "fetch a post and its comments",
			Action:    runPostShow,
		},
		&cli.Command{
			Name:      "ls",
			Aliases:   []string{"list"},
			ArgsUsage: `<address>`,
			Usage:     "list posts by author, newest first",
			Action:    runPostList,
		},
		&cli.Command{
			Name:      "rm",
			ArgsUsage: `<post-id>`,
			Action:    runPostDelete,
		},
		&cli.Command{
			Name:      "like",
			ArgsUsage: `<post-id>`,
			Action:    runPostLike,
		},
		&cli.Command{
			Name:      "unlike",
			ArgsUsage: `<post-id>`,
			Action:    runPostUnlike,
		},
		&cli.Command{
			Name:      "comment",
			ArgsUsage: `<post-id> <text>`,
			Action:    runPostComment,
		},
	},
}

// upstream UI limits, enforced here since builders do not re-validate
const (
	maxPostLength    = 500
	maxCommentLength = 200
)

func runPostCreate(cctx *cli.Context) error {
	ctx := context.Background()

	content := cctx.Args().First()
	if content == "" {
		return fmt.Errorf("need post text as an argument")
	}
	if len(content) > maxPostLength {
		return fmt.Errorf("post text exceeds %d characters", maxPostLength)
	}

	profile, err := requireProfile(cctx)
	if err != nil {
		return err
	}

	var imageURLs []string
	if paths := cctx.StringSlice("image"); len(paths) > 0 {
		wc := newWalrusClient(cctx)
		images := make([][]byte, len(paths))
		for i, p := range paths {
			b, err := os.ReadFile(p)
			if err != nil {
				return err
			}
			images[i] = b
		}
		blobs, err := wc.UploadImages(ctx, images)
		if err != nil {
			return fmt.Errorf("uploading images: %w", err)
		}
		for _, blob := range blobs {
			imageURLs = append(imageURLs, blob.URL)
		}
	}

	tx := newBuilder(cctx).CreatePost(profile.ID, content, imageURLs)
	return submit(cctx, tx)
}

func runPostShow(cctx *cli.Context) error {
	ctx := context.Background()

	postID := cctx.Args().First()
	if postID == "" {
		return fmt.Errorf("need a post id argument")
	}

	loader := newLoader(cctx)
	post, err := loader.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return fmt.Errorf("no such post: %s", postID)
	}

	comments, err := loader.GetComments(ctx, postID, post.CommentCount)
	if err != nil {
		return err
	}
	return printJSON(map[string]any{
		"post":     post,
		"comments": comments,
	})
}

func runPostList(cctx *cli.Context) error {
	addr := cctx.Args().First()
	if addr == "" {
		return fmt.Errorf("need an address argument")
	}
	posts, err := newLoader(cctx).ListPostsByAuthor(context.Background(), addr)
	if err != nil {
		return err
	}
	return printJSON(posts)
}

func runPostDelete(cctx *cli.Context) error {
	postID := cctx.Args().First()
	if postID == "" {
		return fmt.Errorf("need a post id argument")
	}
	return submit(cctx, newBuilder(cctx).DeletePost(postID))
}

func runPostLike(cctx *cli.Context) error {
	postID := cctx.Args().First()
	if postID == "" {
		return fmt.Errorf("need a post id argument")
	}
	profile, err := requireProfile(cctx)
	if err != nil {
		return err
	}
	return submit(cctx, newBuilder(cctx).LikePost(postID, profile.ID))
}

func runPostUnlike(cctx *cli.Context) error {
	postID := cctx.Args().First()
	if postID == "" {
		return fmt.Errorf("need a post id argument")
	}
	profile, err := requireProfile(cctx)
	if err != nil {
		return err
	}
	return submit(cctx, newBuilder(cctx).UnlikePost(postID, profile.ID))
}

func runPostComment(cctx *cli.Context) error {
	if cctx.Args().Len() < 2 {
		return fmt.Errorf("need post id and comment text arguments")
	}
	postID := cctx.Args().Get(0)
	content := cctx.Args().Get(1)
	if len(content) > maxCommentLength {
		return fmt.Errorf("comment exceeds %d characters", maxCommentLength)
	}
	profile, err := requireProfile(cctx)
	if err != nil {
		return err
	}
	return submit(cctx, newBuilder(cctx).AddComment(postID, profile.ID, content))
}
