// Package actions provides the business logic behind the gitprompt command.
//
// PromptAction resolves the repository context of the working directory,
// reads the branch, checks dirtiness and returns what should be printed.
// Every failure degrades to "print nothing" or "treat as clean".
package actions
