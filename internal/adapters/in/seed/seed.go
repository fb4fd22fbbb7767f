// Package seed loads an organization graph, persons and orders from a YAML
// document and writes them through the core's repositories in one unit of
// work.
//
//	organizations:
//	  - id: 7b0f3c1e-5d43-4a4e-9a43-0c1f4c1d2a10
//	    name: Northwind
//	    branches:
//	      - id: 1c2d3e4f-0000-4000-8000-000000000001
//	        name: Harbor
//	persons:
//	  - id: 9e8d7c6b-0000-4000-8000-000000000002
//	    displayName: Dana Driver
//	    capabilities: [admin]
//	memberships:
//	  - person: 9e8d7c6b-0000-4000-8000-000000000002
//	    organization: 7b0f3c1e-5d43-4a4e-9a43-0c1f4c1d2a10
//	    branch: 1c2d3e4f-0000-4000-8000-000000000001
//	    role: driver
//	orders:
//	  - id: 5a5a5a5a-0000-4000-8000-000000000003
//	    organization: 7b0f3c1e-5d43-4a4e-9a43-0c1f4c1d2a10
//	    events:
//	      - status: Pending
//	        at: 2025-03-10T08:00:00Z
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/orderevent"
	"logistics/internal/core/domain/model/organization"
	"logistics/internal/core/domain/model/person"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

type Document struct {
	Organizations []Organization `yaml:"organizations"`
	Persons       []Person       `yaml:"persons"`
	Memberships   []Membership   `yaml:"memberships"`
	Orders        []Order        `yaml:"orders"`
}

type Organization struct {
	ID       kernel.UUID `yaml:"id"`
	Name     string      `yaml:"name"`
	Branches []Branch    `yaml:"branches"`
}

type Branch struct {
	ID   kernel.UUID `yaml:"id"`
	Name string      `yaml:"name"`
}

type Person struct {
	ID           kernel.UUID `yaml:"id"`
	DisplayName  string      `yaml:"displayName"`
	Capabilities []string    `yaml:"capabilities"`
}

// Membership omits its identity when the document does not care about it.
type Membership struct {
	ID           *kernel.UUID      `yaml:"id"`
	Person       kernel.UUID       `yaml:"person"`
	Organization kernel.UUID       `yaml:"organization"`
	Branch       *kernel.UUID      `yaml:"branch"`
	Role         organization.Role `yaml:"role"`
}

type Order struct {
	ID           kernel.UUID   `yaml:"id"`
	Organization kernel.UUID   `yaml:"organization"`
	Branch       *kernel.UUID  `yaml:"branch"`
	Status       *order.Status `yaml:"status"`
	Events       []Event       `yaml:"events"`
}

// Event is a historical order event. Without an actor it is system-generated.
type Event struct {
	Status order.Status `yaml:"status"`
	At     time.Time    `yaml:"at"`
	Actor  *kernel.UUID `yaml:"actor"`
	Remark *string      `yaml:"remark"`
}

// Summary counts what Apply wrote.
type Summary struct {
	Organizations int
	Branches      int
	Persons       int
	Memberships   int
	Orders        int
	Events        int
}

// Load decodes a seed document. Unknown fields are rejected.
func Load(r io.Reader) (Document, error) {
	var doc Document

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, nil
		}
		return Document{}, fmt.Errorf("decode seed document: %w", err)
	}

	return doc, nil
}

// Apply writes the document in dependency order inside one transaction. Any
// failure leaves the store untouched.
func (d Document) Apply(ctx context.Context, factory ports.UnitOfWorkFactory) (Summary, error) {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return Summary{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var summary Summary
	steps := []func(context.Context, ports.Repositories, *Summary) error{
		d.applyOrganizations,
		d.applyPersons,
		d.applyMemberships,
		d.applyOrders,
	}
	for _, step := range steps {
		if err := step(ctx, uow, &summary); err != nil {
			return Summary{}, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return Summary{}, err
	}

	return summary, nil
}

func (d Document) applyOrganizations(ctx context.Context, repos ports.Repositories, summary *Summary) error {
	repo := repos.OrganizationRepository()
	for _, o := range d.Organizations {
		org, err := organization.NewOrganization(o.ID, o.Name)
		if err != nil {
			return fmt.Errorf("organization %s: %w", o.ID, err)
		}
		if err = repo.AddOrganization(ctx, org); err != nil {
			return fmt.Errorf("organization %s: %w", o.ID, err)
		}
		summary.Organizations++

		for _, b := range o.Branches {
			branch, branchErr := organization.NewBranch(b.ID, o.ID, b.Name)
			if branchErr != nil {
				return fmt.Errorf("branch %s: %w", b.ID, branchErr)
			}
			if branchErr = repo.AddBranch(ctx, branch); branchErr != nil {
				return fmt.Errorf("branch %s: %w", b.ID, branchErr)
			}
			summary.Branches++
		}
	}
	return nil
}

func (d Document) applyPersons(ctx context.Context, repos ports.Repositories, summary *Summary) error {
	repo := repos.PersonRepository()
	for _, p := range d.Persons {
		capabilities := make([]person.Capability, 0, len(p.Capabilities))
		for _, raw := range p.Capabilities {
			c, err := person.ParseCapability(raw)
			if err != nil {
				return fmt.Errorf("person %s: %w", p.ID, err)
			}
			capabilities = append(capabilities, c)
		}

		entity, err := person.NewPerson(p.ID, p.DisplayName, capabilities...)
		if err != nil {
			return fmt.Errorf("person %s: %w", p.ID, err)
		}
		if err = repo.Add(ctx, entity); err != nil {
			return fmt.Errorf("person %s: %w", p.ID, err)
		}
		summary.Persons++
	}
	return nil
}

func (d Document) applyMemberships(ctx context.Context, repos ports.Repositories, summary *Summary) error {
	repo := repos.OrganizationRepository()
	for i, m := range d.Memberships {
		id := kernel.NewUUID()
		if m.ID != nil {
			id = *m.ID
		}

		membership, err := organization.NewMembership(id, m.Person, m.Organization, m.Branch, m.Role)
		if err != nil {
			return fmt.Errorf("membership #%d: %w", i+1, err)
		}
		if err = checkBranch(ctx, repo, m.Organization, m.Branch); err != nil {
			return fmt.Errorf("membership #%d: %w", i+1, err)
		}
		if err = repo.AddMembership(ctx, membership); err != nil {
			return fmt.Errorf("membership #%d: %w", i+1, err)
		}
		summary.Memberships++
	}
	return nil
}

func (d Document) applyOrders(ctx context.Context, repos ports.Repositories, summary *Summary) error {
	for _, o := range d.Orders {
		scope, err := order.NewScope(o.Organization, o.Branch)
		if err != nil {
			return fmt.Errorf("order %s: %w", o.ID, err)
		}
		if err = checkBranch(ctx, repos.OrganizationRepository(), o.Organization, o.Branch); err != nil {
			return fmt.Errorf("order %s: %w", o.ID, err)
		}

		status := order.Pending
		if o.Status != nil {
			status = *o.Status
		}
		entity, err := order.RestoreOrder(o.ID, scope, status)
		if err != nil {
			return fmt.Errorf("order %s: %w", o.ID, err)
		}
		if err = repos.OrderRepository().Add(ctx, entity); err != nil {
			return fmt.Errorf("order %s: %w", o.ID, err)
		}
		summary.Orders++

		for _, e := range o.Events {
			event, eventErr := orderevent.New(o.ID, e.Status, e.Remark, e.Actor, e.At)
			if eventErr != nil {
				return fmt.Errorf("order %s event: %w", o.ID, eventErr)
			}
			if _, eventErr = repos.OrderEventRepository().Append(ctx, event); eventErr != nil {
				return fmt.Errorf("order %s event: %w", o.ID, eventErr)
			}
			summary.Events++
		}
	}
	return nil
}

// checkBranch requires branchID, when set, to be a branch of organizationID.
func checkBranch(
	ctx context.Context,
	repo ports.OrganizationRepository,
	organizationID kernel.UUID,
	branchID *kernel.UUID,
) error {
	if branchID == nil {
		return nil
	}
	branch, err := repo.GetBranch(ctx, *branchID)
	if err != nil {
		return err
	}
	if !branch.OrganizationID().IsEqual(organizationID) {
		return errs.NewValueIsInvalidErrorWithCause("branch", fmt.Errorf(
			"branch %s belongs to organization %s, not %s", branchID, branch.OrganizationID(), organizationID))
	}
	return nil
}
