package access

import (
	"testing"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/domain"
	"github.com/stretchr/testify/require"
)

func TestDecide(t *testing.T) {
	t.Parallel()

	landlord := Subject{AccountID: "L1", Role: domain.RoleLandlord}
	tenant := Subject{AccountID: "T1", Role: domain.RoleTenant}
	admin := Subject{AccountID: "A1", Role: domain.RoleAdmin}

	ownProperty := Ownership{Kind: KindProperty, LandlordID: "L1", TenantID: "T1"}
	otherProperty := Ownership{Kind: KindProperty, LandlordID: "L2", TenantID: "T2"}
	ownInvite := Ownership{Kind: KindInvitation, LandlordID: "L1"}
	ownBinding := Ownership{Kind: KindBinding, LandlordID: "L1", TenantID: "T1"}
	otherBinding := Ownership{Kind: KindBinding, LandlordID: "L2", TenantID: "T2"}

	tests := []struct {
		name    string
		subject Subject
		action  Action
		owner   Ownership
		want    bool
	}{
		{"landlord creates property", landlord, ActionCreate, Ownership{Kind: KindProperty}, true},
		{"landlord reads own property", landlord, ActionRead, ownProperty, true},
		{"landlord invites on own property", landlord, ActionInvite, ownProperty, true},
		{"landlord removes own tenant", landlord, ActionRemoveTenant, ownProperty, true},
		{"landlord cannot invite elsewhere", landlord, ActionInvite, otherProperty, false},
		{"landlord cannot read other property", landlord, ActionRead, otherProperty, false},
		{"landlord revokes own invitation", landlord, ActionModify, ownInvite, true},
		{"landlord reads binding on own property", landlord, ActionRead, ownBinding, true},
		{"landlord cannot modify binding", landlord, ActionModify, ownBinding, false},
		{"landlord terminates binding on own property", landlord, ActionTerminate, ownBinding, true},
		{"landlord cannot terminate other binding", landlord, ActionTerminate, otherBinding, false},
		{"landlord lists own tenancies", landlord, ActionRead, Ownership{Kind: KindBinding, LandlordID: "L1"}, true},
		{"landlord cannot read other binding", landlord, ActionRead, otherBinding, false},
		{"landlord reads own tenant account", landlord, ActionRead, Ownership{Kind: KindAccount, AccountID: "T1", LandlordID: "L1"}, true},
		{"landlord cannot modify tenant account", landlord, ActionModify, Ownership{Kind: KindAccount, AccountID: "T1", LandlordID: "L1"}, false},

		{"tenant reads own binding", tenant, ActionRead, ownBinding, true},
		{"tenant modifies own binding", tenant, ActionModify, ownBinding, true},
		{"tenant cannot read other binding", tenant, ActionRead, otherBinding, false},
		{"tenant terminates own binding", tenant, ActionTerminate, ownBinding, true},
		{"tenant cannot terminate other binding", tenant, ActionTerminate, otherBinding, false},
		{"tenant cannot list a landlord's tenancies", tenant, ActionRead, Ownership{Kind: KindBinding, LandlordID: "L1"}, false},
		{"tenant cannot list property invitations", tenant, ActionRead, Ownership{Kind: KindInvitation, LandlordID: "L1"}, false},
		{"tenant reads bound property", tenant, ActionRead, ownProperty, true},
		{"tenant cannot modify bound property", tenant, ActionModify, ownProperty, false},
		{"tenant cannot read other property", tenant, ActionRead, otherProperty, false},
		{"tenant cannot create property", tenant, ActionCreate, Ownership{Kind: KindProperty}, false},
		{"tenant cannot invite", tenant, ActionInvite, ownProperty, false},
		{"tenant cannot read invitations", tenant, ActionRead, ownInvite, false},
		{"tenant reads self", tenant, ActionRead, Ownership{Kind: KindAccount, AccountID: "T1"}, true},

		{"admin reads anything", admin, ActionRead, otherBinding, true},
		{"admin invites anywhere", admin, ActionInvite, otherProperty, true},

		{"unknown role", Subject{AccountID: "X", Role: "janitor"}, ActionRead, ownProperty, false},
		{"anonymous", Subject{Role: domain.RoleAdmin}, ActionRead, ownProperty, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Decide(tc.subject, tc.action, tc.owner))
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	a, err := ParseAction("remove_tenant")
	require.NoError(t, err)
	require.Equal(t, ActionRemoveTenant, a)

	_, err = ParseAction("destroy")
	require.Error(t, err)

	k, err := ParseKind("binding")
	require.NoError(t, err)
	require.Equal(t, KindBinding, k)

	_, err = ParseKind("ticket")
	require.Error(t, err)
}
