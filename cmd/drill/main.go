// drill は端末で書き取り練習を行う生徒用クライアントです
//
//	go run ./cmd/drill -url http://localhost:8080/api/v1 -tenant <uuid> -account taro -password secret
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go_5_vocab_drill/internal/client"
	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/practice"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080/api/v1", "API のベースURL")
	tenant := flag.String("tenant", "", "テナントID")
	account := flag.String("account", "", "生徒アカウント")
	password := flag.String("password", "", "パスワード")
	bookID := flag.Uint("book", 0, "単語帳ID (省略時は学習中の計画)")
	verbose := flag.Bool("v", false, "API呼び出しをログに出す")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level, TimeFormat: time.Kitchen}))

	tenantID, err := uuid.Parse(*tenant)
	if err != nil || *account == "" {
		fmt.Fprintln(os.Stderr, "-tenant と -account は必須です")
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	d := &drill{
		api:    client.New(*baseURL, logger),
		logger: logger,
		in:     bufio.NewScanner(os.Stdin),
		out:    os.Stdout,
	}
	if err := d.run(ctx, tenantID, *account, *password, uint(*bookID)); err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			fmt.Fprintf(os.Stderr, "エラー: %s (%s)\n", apiErr.Detail.Message, apiErr.Detail.Code)
		} else {
			fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		}
		os.Exit(1)
	}
}

type drill struct {
	api    *client.Client
	logger *slog.Logger
	in     *bufio.Scanner
	out    io.Writer
}

var errQuit = errors.New("quit")

func (d *drill) run(ctx context.Context, tenantID uuid.UUID, account, password string, bookID uint) error {
	login, err := d.api.StudentLogin(ctx, tenantID, account, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(d.out, "ようこそ、%sさん\n", login.User.Name)

	if bookID == 0 {
		if bookID, err = d.learningBook(ctx); err != nil {
			return err
		}
	}

	gen, err := d.api.GenerateTask(ctx, bookID)
	if err != nil {
		return err
	}
	if gen.AllCompleted || gen.Data == nil {
		fmt.Fprintln(d.out, "この単語帳の単語はすべて学習済みです。")
		return nil
	}
	if gen.Exists {
		fmt.Fprintln(d.out, "途中のタスクを再開します。")
	}

	sink := client.NewAsyncResultSink(d.api, d.logger)
	session, err := practice.NewSession(gen.Data, sink)
	if err != nil {
		return err
	}

	err = d.practice(ctx, session)
	// 送信中の結果は中断時も待つ
	if failed := sink.Wait(); failed > 0 {
		fmt.Fprintf(d.out, "%d件の結果を送信できませんでした。\n", failed)
	}
	if errors.Is(err, errQuit) {
		fmt.Fprintln(d.out, "中断しました。次回は同じタスクから再開できます。")
		return nil
	}
	if err != nil {
		return err
	}

	sum, err := session.Summary()
	if err != nil {
		return err
	}
	if _, err := d.api.UpdateTask(ctx, sum.TaskID, sum.TaskUpdate()); err != nil {
		return err
	}
	fmt.Fprintf(d.out, "\n完了! 正解 %d / 不正解 %d / ヒント %d / %dラウンド / %s\n",
		sum.Correct, sum.Wrong, sum.Hints, sum.Rounds, sum.Duration.Round(time.Second))
	return nil
}

// learningBook は学習中の計画の単語帳を返します
func (d *drill) learningBook(ctx context.Context) (uint, error) {
	plans, err := d.api.ListPlans(ctx)
	if err != nil {
		return 0, err
	}
	for _, p := range plans {
		if p.Status == model.PlanStatusLearning {
			fmt.Fprintf(d.out, "学習中の単語帳: %s\n", p.BookName)
			return p.BookID, nil
		}
	}
	return 0, errors.New("学習中の計画がありません。-book で単語帳を指定してください")
}

func (d *drill) practice(ctx context.Context, s *practice.Session) error {
	fmt.Fprint(d.out, "Enter キーで開始します (q で中断) ")
	line, err := d.readLine(ctx)
	if err != nil {
		return err
	}
	if line == "q" {
		return errQuit
	}
	if err := s.UnlockAudio(); err != nil {
		return err
	}

	round := 0
	for s.State() != practice.StateCompleted {
		if s.Round() != round {
			round = s.Round()
			if round > 1 {
				fmt.Fprintf(d.out, "\n--- ラウンド %d (間違えた単語の復習) ---\n", round)
			}
		}
		if err := d.ask(ctx, s); err != nil {
			return err
		}
		if _, err := s.Next(); err != nil {
			return err
		}
	}
	return nil
}

// ask は1単語を出題し、採点まで進めます。"?" でヒント
func (d *drill) ask(ctx context.Context, s *practice.Session) error {
	word, slots, err := s.Current()
	if err != nil {
		return err
	}
	pos, total := s.Progress()
	fmt.Fprintf(d.out, "\n[%d/%d] %s\n  %s > ", pos, total, word.Meaning, practice.Mask(slots))

	for {
		line, err := d.readLine(ctx)
		if err != nil {
			return err
		}
		switch line {
		case "q":
			return errQuit
		case "?":
			hint, err := s.Hint()
			if err != nil {
				return err
			}
			printHint(d.out, hint)
			fmt.Fprintf(d.out, "  %s > ", practice.Mask(slots))
			continue
		}

		grade, err := s.SubmitLine(ctx, line)
		if err != nil {
			return err
		}
		if grade.Correct {
			fmt.Fprintln(d.out, "  ○ 正解")
		} else {
			fmt.Fprintf(d.out, "  × 不正解 (入力: %s / 正解: %s)\n", grade.Answer, grade.Expected)
		}
		return nil
	}
}

func printHint(w io.Writer, word *model.Word) {
	fmt.Fprintf(w, "  正解: %s\n", word.Spelling)
	if word.Meaning != "" {
		fmt.Fprintf(w, "  意味: %s\n", word.Meaning)
	}
	if word.Sentence != "" {
		fmt.Fprintf(w, "  例文: %s\n", word.Sentence)
	}
	if word.PhonicsData != "" {
		fmt.Fprintf(w, "  発音: %s\n", word.PhonicsData)
	}
	if word.RootInfo != "" {
		fmt.Fprintf(w, "  語源: %s\n", word.RootInfo)
	}
}

func (d *drill) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errQuit
	}
	if !d.in.Scan() {
		if err := d.in.Err(); err != nil {
			return "", err
		}
		return "", errQuit
	}
	return strings.TrimSpace(d.in.Text()), nil
}
