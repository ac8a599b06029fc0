package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aquago/aquago/internal/app/config"
	"github.com/aquago/aquago/internal/app/logger"
	"github.com/aquago/aquago/internal/app/models"
	"github.com/aquago/aquago/internal/app/repository"
	"github.com/aquago/aquago/internal/app/service"
	"github.com/aquago/aquago/internal/app/service/clients"
)

// aquago is the headless client runtime behind the mobile shell. Run from
// the command line it exposes the same flows for debugging:
//
//	aquago login <email> <password>
//	aquago watch              follow nearby suppliers until interrupted
//	aquago orders             list deliveries and their cancel state
//	aquago chat <order-id> [message]
//	aquago signout
func main() {
	c := config.ParseFlags()
	logger.InitLogger(c.LogLevel)

	// setup local store and repositories
	s := repository.NewLocalStore(c)
	defer s.Close()
	sessionRepo := repository.NewSessionRepository(s.DBConn)

	// setup clients
	gc := clients.NewGatewayClient(c)
	feed := service.NewRedisFeed(c)
	defer feed.Close()

	// setup services
	ss := service.NewSessionService(c, gc, sessionRepo)
	ds := service.NewDiscoveryService(c, gc)
	cs := service.NewChatService(gc, feed)

	timeout := time.Duration(c.ContextTimeoutSec) * time.Second
	window := time.Duration(c.CancelWindowSec) * time.Second
	args := flag.Args()
	command := "watch"
	if len(args) > 0 {
		command = args[0]
	}

	switch command {
	case "login":
		if len(args) < 3 {
			log.Fatal("usage: aquago login <email> <password>")
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		session, err := ss.Login(ctx, args[1], args[2])
		if err != nil {
			log.Fatalf("login: %v", err)
		}
		fmt.Printf("signed in as %s\n", session.Email)

	case "signout":
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := ss.SignOut(ctx); err != nil {
			log.Fatalf("sign out: %v", err)
		}
		fmt.Println("signed out")

	case "watch":
		session := restoreSession(ss, timeout)
		watchSuppliers(ds, feed, session, timeout)

	case "orders":
		session := restoreSession(ss, timeout)
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		orders, err := gc.Deliveries(ctx, session)
		if err != nil {
			log.Fatalf("list deliveries: %v", err)
		}
		now := time.Now()
		for _, order := range *orders {
			cw := service.NewCancelWindow(gc, session, order.ID, order.CreatedAt, window)
			line := fmt.Sprintf("%s  %dL  %.2f  %s", order.ID, order.Volume, order.Amount, order.Status)
			if cw.Offerable(now, order.Status) {
				line += fmt.Sprintf("  cancellable for %ds", cw.Remaining(now))
			}
			fmt.Println(line)
		}

	case "chat":
		if len(args) < 2 {
			log.Fatal("usage: aquago chat <order-id> [message]")
		}
		orderID, err := uuid.Parse(args[1])
		if err != nil {
			log.Fatalf("bad order id: %v", err)
		}
		session := restoreSession(ss, timeout)
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if len(args) > 2 {
			if err := cs.Send(ctx, session, orderID, args[2]); err != nil {
				log.Fatalf("send message: %v", err)
			}
		}
		messages, err := cs.Messages(ctx, session, orderID)
		if err != nil {
			log.Fatalf("load messages: %v", err)
		}
		for _, message := range *messages {
			from := "you"
			if message.Supplier {
				from = "supplier"
			}
			fmt.Printf("[%s] %s: %s\n", message.CreatedAt.Format(time.Kitchen), from, message.Text)
		}

	default:
		log.Fatalf("unknown command %q", command)
	}
}

func restoreSession(ss service.SessionService, timeout time.Duration) *models.Session {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	session, err := ss.Restore(ctx)
	if err != nil {
		log.Fatalf("no usable session, run `aquago login` first: %v", err)
	}
	logger.Log.Info("session restored", zap.String("email", session.Email))
	return session
}

// watchSuppliers prints the supplier list and reprints it on every
// change-feed refresh until the process is interrupted.
func watchSuppliers(ds service.DiscoveryService, feed service.Feed, session *models.Session, timeout time.Duration) {
	runCtx, runStopCtx := context.WithCancel(context.Background())

	refresh := make(chan struct{}, 1)
	sub, err := ds.BindFeed(feed, func() {
		select {
		case refresh <- struct{}{}:
		default:
		}
	})
	if err != nil {
		log.Fatalf("subscribe to change feed: %v", err)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sig
		sub.Unsubscribe()
		runStopCtx()
	}()

	printSuppliers(runCtx, ds, session, timeout)
	for {
		select {
		case <-refresh:
			printSuppliers(runCtx, ds, session, timeout)
		case <-runCtx.Done():
			return
		}
	}
}

func printSuppliers(runCtx context.Context, ds service.DiscoveryService, session *models.Session, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(runCtx, timeout)
	defer cancel()

	snapshot := ds.Nearby(ctx, session, nil)
	if snapshot.Err != nil {
		fmt.Printf("could not load suppliers: %v\n", snapshot.Err)
		return
	}
	if len(snapshot.Suppliers) == 0 {
		fmt.Println("no suppliers available")
		return
	}
	for _, supplier := range snapshot.Suppliers {
		state := "online"
		if !supplier.Online {
			state = "offline"
		}
		fmt.Printf("%s (%s) %s\n", supplier.Name, state, supplier.Address)
		for _, rate := range ds.ActionableRates(supplier) {
			fmt.Printf("  %dL for %.2f\n", rate.Volume, rate.Price)
		}
	}
}
