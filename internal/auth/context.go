package auth

// ContextKeyAdmin is the echo context key under which the identity middleware
// stores the resolved *model.Admin.
const ContextKeyAdmin = "admin"
