package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func Home() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>Rummy Tally</title>
    <style>
      body { font-family: system-ui, sans-serif; margin: 2rem auto; max-width: 900px; padding: 0 1rem; }
      table { border-collapse: collapse; margin: 1rem 0; width: 100%; }
      th, td { border: 1px solid #ccc; padding: 0.4rem 0.7rem; text-align: center; }
      tr.totals { font-weight: bold; background: #f4f4f4; }
      .controls { display: flex; flex-wrap: wrap; gap: 0.5rem; margin: 1rem 0; }
      button { padding: 0.4rem 0.9rem; cursor: pointer; }
      input[type=number] { width: 5rem; }
      .result { color: #a33; min-height: 1.2rem; }
      td.cell { cursor: pointer; }
    </style>
  </head>
  <body>
    <h1>Rummy Tally</h1>

    <div class="controls">
      <button id="startGame">New game</button>
      <button id="endGame">End game</button>
      <form id="addPlayerForm" style="display:inline">
        <input name="name" placeholder="Player name" autocomplete="off"/>
        <button type="submit">Add player</button>
      </form>
      <button id="addRound">Add round</button>
      <a href="/api/export" download><button type="button">Export CSV</button></a>
    </div>

    <form id="rulesForm" class="controls">
      <label>Drop <input type="number" name="drop"/></label>
      <label>Middle Drop <input type="number" name="middle_drop"/></label>
      <label>Full Count <input type="number" name="full_count"/></label>
      <button type="submit">Save rules</button>
    </form>

    <div id="result" class="result"></div>
    <div id="table"></div>

    <script>
      const result = document.getElementById("result");
      const tableBox = document.getElementById("table");
      const rulesForm = document.getElementById("rulesForm");
      const rules = ["zero", "game", "drop", "middle-drop", "full-count", "custom"];

      function render(state) {
        rulesForm.elements.drop.value = state.rules.drop;
        rulesForm.elements.middle_drop.value = state.rules.middle_drop;
        rulesForm.elements.full_count.value = state.rules.full_count;
        if (!state.in_progress && state.players.length === 0) {
          tableBox.innerHTML = "<p>No game in progress.</p>";
          return;
        }
        let html = "<table><tr><th>Round</th>";
        for (const player of state.players) {
          html += "<th>" + escapeHTML(player.name) + "</th>";
        }
        html += "</tr>";
        for (let round = 0; round < state.round_count; round++) {
          html += "<tr><td>" + (round + 1) + "</td>";
          state.players.forEach((player, index) => {
            const entry = player.scores[round];
            const text = entry.rule === "custom" ? entry.points : entry.label;
            html += '<td class="cell" data-player="' + index + '" data-round="' + round + '">' + text + "</td>";
          });
          html += "</tr>";
        }
        html += '<tr class="totals"><td>Total</td>';
        for (const player of state.players) {
          html += "<td>" + player.total + "</td>";
        }
        html += "</tr></table>";
        tableBox.innerHTML = html;
        for (const cell of tableBox.querySelectorAll("td.cell")) {
          cell.addEventListener("click", () => editCell(cell.dataset.player, cell.dataset.round));
        }
      }

      function escapeHTML(text) {
        const div = document.createElement("div");
        div.textContent = text;
        return div.innerHTML;
      }

      async function call(method, url, body) {
        result.textContent = "";
        const res = await fetch(url, {
          method,
          headers: body ? { "Content-Type": "application/json" } : {},
          body: body ? JSON.stringify(body) : undefined
        });
        const data = await res.json();
        if (!res.ok) {
          result.textContent = data.error || "Request failed.";
          return null;
        }
        return data;
      }

      async function refresh() {
        const res = await fetch("/api/game");
        if (res.ok) {
          render(await res.json());
        }
      }

      async function editCell(playerIndex, roundIndex) {
        const rule = prompt("Rule (" + rules.join(", ") + "):", "zero");
        if (!rule) return;
        const body = { rule: rule.trim() };
        if (body.rule === "custom") {
          const value = prompt("Points:", "0");
          if (value === null) return;
          body.value = parseInt(value, 10) || 0;
        }
        const data = await call("PUT", "/api/game/players/" + playerIndex + "/rounds/" + roundIndex, body);
        if (data) render(data);
      }

      document.getElementById("startGame").addEventListener("click", async () => {
        const data = await call("POST", "/api/game/start");
        if (data) render(data);
      });

      document.getElementById("endGame").addEventListener("click", async () => {
        const data = await call("POST", "/api/game/end");
        if (data) render(data);
      });

      document.getElementById("addRound").addEventListener("click", async () => {
        const data = await call("POST", "/api/game/rounds");
        if (data) render(data);
      });

      document.getElementById("addPlayerForm").addEventListener("submit", async (event) => {
        event.preventDefault();
        const name = event.target.elements.name.value.trim();
        const data = await call("POST", "/api/game/players", { name });
        if (data) {
          event.target.reset();
          render(data);
        }
      });

      rulesForm.addEventListener("submit", async (event) => {
        event.preventDefault();
        await call("PUT", "/api/rules", {
          drop: parseInt(rulesForm.elements.drop.value, 10) || 0,
          middle_drop: parseInt(rulesForm.elements.middle_drop.value, 10) || 0,
          full_count: parseInt(rulesForm.elements.full_count.value, 10) || 0
        });
        refresh();
      });

      const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
      ws.addEventListener("message", (event) => {
        render(JSON.parse(event.data));
      });

      refresh();
    </script>
  </body>
</html>
`)
		return err
	})
}
