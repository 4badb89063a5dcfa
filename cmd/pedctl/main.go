// Command pedctl connects to a bridge and inspects or drives one ped.
//
//	pedctl -handle 1 inspect
//	pedctl -handle 1 set money 500
//	pedctl -handle 1 clipset move_m@drunk@verydrunk
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/zeusync/actorproxy/internal/config"
	"github.com/zeusync/actorproxy/internal/core/entity"
	"github.com/zeusync/actorproxy/internal/core/events/bus"
	"github.com/zeusync/actorproxy/internal/core/script"
	"github.com/zeusync/actorproxy/internal/core/weapons"
	"github.com/zeusync/actorproxy/internal/injector"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML config file")
		url        = flag.String("url", "", "bridge url, overrides the config")
		handle     = flag.Int("handle", 1, "ped handle")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	if err := run(*configPath, *url, entity.Handle(*handle), flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "pedctl:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: pedctl [flags] <command> [args]

commands:
  inspect                  print the ped's state
  set <attr> <value>       set money, armor, health, maxhealth, accuracy or sweat
  kill                     kill the ped
  give <weapon> <ammo>     give pistol, smg, rifle or knife and equip it
  clipset <name>           stream a movement clip set and apply it

flags:
`)
	flag.PrintDefaults()
}

func run(configPath, url string, h entity.Handle, args []string) error {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}
	if url != "" {
		cfg.Bridge.URL = url
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rt, cleanup, err := injector.InitializeClientRuntime(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	p := entity.NewPed(rt, h)
	if !p.Exists() {
		return fmt.Errorf("ped %d does not exist", h)
	}

	switch cmd := args[0]; cmd {
	case "inspect":
		inspect(p)
	case "set":
		if len(args) != 3 {
			return fmt.Errorf("set needs <attr> <value>")
		}
		if err = set(p, args[1], args[2]); err != nil {
			return err
		}
		inspect(p)
	case "kill":
		p.Kill()
		fmt.Printf("dead: %t\n", p.IsDead())
	case "give":
		if len(args) != 3 {
			return fmt.Errorf("give needs <weapon> <ammo>")
		}
		return give(p, args[1], args[2])
	case "clipset":
		if len(args) != 2 {
			return fmt.Errorf("clipset needs <name>")
		}
		return clipset(ctx, rt, p, args[1], cfg.Resources.TickRate)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func inspect(p *entity.Ped) {
	pos := p.Position()
	fmt.Printf("handle:       %d\n", p.Handle())
	fmt.Printf("model:        0x%08X\n", p.Model())
	fmt.Printf("gender:       %s\n", p.Gender())
	fmt.Printf("position:     %.2f %.2f %.2f\n", pos.X, pos.Y, pos.Z)
	fmt.Printf("health:       %d/%d\n", p.Health(), p.MaxHealth())
	fmt.Printf("armor:        %d\n", p.Armor())
	fmt.Printf("money:        %d\n", p.Money())
	fmt.Printf("accuracy:     %d\n", p.Accuracy())
	fmt.Printf("sweat:        %.0f\n", p.Sweat())
	fmt.Printf("seat:         %s\n", p.SeatIndex())
	fmt.Printf("dead:         %t\n", p.IsDead())
	fmt.Printf("idle:         %t\n", p.IsIdle())
	fmt.Printf("weapon:       0x%08X\n", uint32(p.Weapons().Current()))
	fmt.Printf("relationship: 0x%08X\n", p.RelationshipGroup().Hash())
}

func set(p *entity.Ped, attr, raw string) error {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("value %q: %w", raw, err)
	}
	switch strings.ToLower(attr) {
	case "money":
		p.SetMoney(v)
	case "armor", "armour":
		p.SetArmor(v)
	case "health":
		p.SetHealth(v)
	case "maxhealth":
		p.SetMaxHealth(v)
	case "accuracy":
		p.SetAccuracy(v)
	case "sweat":
		p.SetSweat(float32(v))
	default:
		return fmt.Errorf("unknown attribute %q", attr)
	}
	return nil
}

var weaponNames = map[string]weapons.Hash{
	"pistol": weapons.Pistol,
	"smg":    weapons.SMG,
	"rifle":  weapons.AssaultRifle,
	"knife":  weapons.Knife,
}

func give(p *entity.Ped, name, rawAmmo string) error {
	w, ok := weaponNames[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unknown weapon %q", name)
	}
	ammo, err := strconv.Atoi(rawAmmo)
	if err != nil {
		return fmt.Errorf("ammo %q: %w", rawAmmo, err)
	}
	p.Weapons().Give(w, ammo, true, true)
	fmt.Printf("weapon: 0x%08X ammo: %d\n", uint32(p.Weapons().Current()), p.Weapons().Ammo(w))
	return nil
}

// clipset ticks the scheduler until the clip set job finishes.
func clipset(ctx context.Context, rt *entity.Runtime, p *entity.Ped, name string, rate time.Duration) error {
	outcome := make(chan string, 1)
	for _, typ := range []string{bus.TypeClipsetApplied, bus.TypeClipsetAbandoned} {
		sub, err := rt.Bus.Subscribe(typ, func(e bus.Event) error {
			select {
			case outcome <- fmt.Sprintf("%s after %v polls", e.Type, e.Data["polls"]):
			default:
			}
			return nil
		})
		if err != nil {
			return err
		}
		defer func() { _ = sub.Cancel() }()
	}

	job := p.SetMovementAnimationSet(name)
	if job == nil {
		return fmt.Errorf("no scheduler")
	}

	runCtx, stop := context.WithCancel(ctx)
	defer stop()
	go func() { _ = rt.Scheduler.Run(runCtx, rate) }()

	select {
	case <-job.Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	fmt.Printf("clipset %s: %s\n", name, <-outcome)
	if job.Status() != script.StatusDone {
		return fmt.Errorf("clip set %q did not load", name)
	}
	return nil
}
