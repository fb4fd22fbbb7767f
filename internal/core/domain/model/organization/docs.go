// Package organization holds the records of the organization graph that the
// order access guard evaluates: organizations, their branches, and the
// memberships that grant a person standing inside them.
//
// Records reference each other only by identifier. A Membership always names
// exactly one Organization; a branch-scoped Membership additionally names one
// Branch of that organization.
package organization
