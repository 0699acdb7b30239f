// Package models defines the core domain models for CU Cares.
//
// # Entities
//
//   - User: a student account with interests, friends and group memberships
//   - Opportunity: a volunteer event worth a fixed number of points
//   - SignUp: a user attending an opportunity
//   - StudentGroup: an organization in one of six fixed categories
//   - FriendRequest: a directed request between two users
//   - Badge: an achievement whose eligibility is described by a BadgeRule
//
// # Design Principles
//
// 1. **Snapshots, not globals**: all collections live in a Snapshot that is
// replaced as a whole after every mutation
// 2. **IDs for relationships**: users reference friends and groups by numeric ID;
// groups do not keep a reverse member list
// 3. **Rules as data**: badge predicates are tagged rules, not closures, so the
// badge catalog can be loaded from fixtures and compared in tests
// 4. **Derived values are never stored**: points, rankings and earned badges are
// recomputed by the calculator package on every read
package models
